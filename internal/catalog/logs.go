package catalog

import "killchain-analyzer-be/internal/entity"

// Security log samples, two per phase. Every entry's Phase field is the
// ground truth the player has to guess.
var logEntries = []entity.LogEntry{
	{
		Id:        "recon_1",
		Phase:     "reconnaissance",
		Raw:       "2024-03-15 09:23:17 [IDS] Multiple DNS queries detected from external IP 185.234.218.12 for domain controllers, mail servers, and VPN endpoints. Pattern suggests automated reconnaissance tool usage.",
		Source:    "Network IDS",
		Severity:  "Low",
		Timestamp: "2024-03-15 09:23:17",
		Metadata: map[string]interface{}{
			"source_ip":      "185.234.218.12",
			"queries":        47,
			"targets":        []string{"dc01.company.local", "mail.company.local", "vpn.company.local"},
			"tool_signature": "nmap/dnsrecon",
		},
		Explanation: "Multiple DNS queries for infrastructure components indicate reconnaissance phase where attackers map the network.",
		Indicators:  []string{"DNS enumeration", "External scanning", "Infrastructure mapping"},
	},
	{
		Id:        "recon_2",
		Phase:     "reconnaissance",
		Raw:       "2024-03-15 11:45:32 [Web Server] Unusual crawling behavior detected: IP 89.123.45.67 accessed /robots.txt, /admin, /wp-admin, /phpmyadmin, /.git in rapid succession. User-Agent: \"Mozilla/5.0 (compatible; scanner/2.0)\"",
		Source:    "Web Application Firewall",
		Severity:  "Low",
		Timestamp: "2024-03-15 11:45:32",
		Metadata: map[string]interface{}{
			"source_ip":     "89.123.45.67",
			"paths_scanned": 23,
			"user_agent":    "Mozilla/5.0 (compatible; scanner/2.0)",
			"scan_duration": "3 minutes",
		},
		Explanation: "Web scanning for common administrative interfaces and version control files indicates reconnaissance activity.",
		Indicators:  []string{"Directory scanning", "Admin panel discovery", "Automated tooling"},
	},
	{
		Id:        "weapon_1",
		Phase:     "weaponization",
		Raw:       "2024-03-16 14:12:45 [Email Security] Suspicious attachment detected: \"Invoice_March2024.docm\" contains obfuscated VBA macro with PowerShell download cradle. Hash matches known malware builder output.",
		Source:    "Email Security Gateway",
		Severity:  "High",
		Timestamp: "2024-03-16 14:12:45",
		Metadata: map[string]interface{}{
			"filename":       "Invoice_March2024.docm",
			"file_hash":      "a4b5c6d7e8f9g0h1i2j3",
			"macro_detected": true,
			"payload_type":   "PowerShell downloader",
		},
		Explanation: "Malicious document with embedded macro represents weaponization phase where exploit is packaged with payload.",
		Indicators:  []string{"Macro-enabled document", "Obfuscated code", "Download cradle"},
	},
	{
		Id:        "weapon_2",
		Phase:     "weaponization",
		Raw:       "2024-03-16 16:30:21 [Threat Intel] New malware sample uploaded to sandbox: PDF exploiting CVE-2024-1234 with embedded JavaScript that drops Cobalt Strike beacon. Document metadata shows creation 2 hours ago.",
		Source:    "Sandbox Analysis",
		Severity:  "High",
		Timestamp: "2024-03-16 16:30:21",
		Metadata: map[string]interface{}{
			"exploit":       "CVE-2024-1234",
			"payload":       "Cobalt Strike",
			"document_type": "PDF",
			"creation_time": "2 hours ago",
		},
		Explanation: "Fresh malware sample with recent exploit shows active weaponization of vulnerabilities.",
		Indicators:  []string{"Exploit packaging", "Fresh malware", "Known framework"},
	},
	{
		Id:        "delivery_1",
		Phase:     "delivery",
		Raw:       "2024-03-17 08:45:12 [Email Gateway] Phishing campaign detected: 47 emails sent to employees from \"noreply@companysupport.tk\" with subject \"Urgent: Update Your Password\". Contains link to credential harvesting site.",
		Source:    "Email Security",
		Severity:  "High",
		Timestamp: "2024-03-17 08:45:12",
		Metadata: map[string]interface{}{
			"sender":        "noreply@companysupport.tk",
			"recipients":    47,
			"subject":       "Urgent: Update Your Password",
			"malicious_url": "hxxps://company-login[.]tk",
		},
		Explanation: "Mass phishing email campaign represents delivery phase where weapon reaches targets.",
		Indicators:  []string{"Phishing emails", "Spoofed sender", "Credential harvesting"},
	},
	{
		Id:        "delivery_2",
		Phase:     "delivery",
		Raw:       "2024-03-17 10:20:33 [Web Proxy] User clicked on malicious ad leading to exploit kit landing page. URL: hxxp://malicious-ads[.]com/campaign/loader.php redirected to Angler EK.",
		Source:    "Web Proxy",
		Severity:  "High",
		Timestamp: "2024-03-17 10:20:33",
		Metadata: map[string]interface{}{
			"initial_url": "malicious-ads.com",
			"exploit_kit": "Angler EK",
			"user":        "john.doe",
			"action":      "Blocked after detection",
		},
		Explanation: "Malvertising leading to exploit kit shows delivery through compromised advertisements.",
		Indicators:  []string{"Malicious redirect", "Exploit kit", "Drive-by download"},
	},
	{
		Id:        "exploit_1",
		Phase:     "exploitation",
		Raw:       "2024-03-18 11:15:43 [EDR] Process injection detected: winword.exe spawned powershell.exe with encoded command attempting to bypass AMSI. Memory analysis shows shellcode execution.",
		Source:    "Endpoint Detection",
		Severity:  "Critical",
		Timestamp: "2024-03-18 11:15:43",
		Metadata: map[string]interface{}{
			"parent_process": "winword.exe",
			"child_process":  "powershell.exe",
			"technique":      "Process Injection",
			"amsi_bypass":    true,
		},
		Explanation: "Malicious code execution from Word document indicates successful exploitation of vulnerability.",
		Indicators:  []string{"Process injection", "AMSI bypass", "Shellcode execution"},
	},
	{
		Id:        "exploit_2",
		Phase:     "exploitation",
		Raw:       "2024-03-18 13:45:22 [SIEM] Exploitation attempt detected: Apache Log4j vulnerability (CVE-2021-44228) triggered via JNDI injection. Payload attempted to download secondary stage from 192.168.45.67.",
		Source:    "SIEM",
		Severity:  "Critical",
		Timestamp: "2024-03-18 13:45:22",
		Metadata: map[string]interface{}{
			"vulnerability":  "CVE-2021-44228",
			"attack_vector":  "JNDI injection",
			"payload_source": "192.168.45.67",
			"service":        "Apache Log4j",
		},
		Explanation: "Log4Shell exploitation attempt shows active vulnerability exploitation phase.",
		Indicators:  []string{"Known CVE", "Remote code execution", "Payload download"},
	},
	{
		Id:        "install_1",
		Phase:     "installation",
		Raw:       "2024-03-19 15:23:11 [Sysmon] Registry persistence detected: New service \"WindowsUpdateHelper\" created pointing to C:\\ProgramData\\update.exe. File signed with invalid certificate, established scheduled task for hourly execution.",
		Source:    "Sysmon",
		Severity:  "High",
		Timestamp: "2024-03-19 15:23:11",
		Metadata: map[string]interface{}{
			"service_name":     "WindowsUpdateHelper",
			"file_path":        "C:\\ProgramData\\update.exe",
			"persistence_type": "Service + Scheduled Task",
			"certificate":      "Invalid",
		},
		Explanation: "Malware establishing persistence through services and scheduled tasks indicates installation phase.",
		Indicators:  []string{"Service creation", "Scheduled task", "Persistence mechanism"},
	},
	{
		Id:        "install_2",
		Phase:     "installation",
		Raw:       "2024-03-19 16:45:33 [EDR] Rootkit installation detected: Hidden process \"svchost.exe\" running from %TEMP% directory with kernel-level hooks. SSDT modification observed.",
		Source:    "EDR System",
		Severity:  "Critical",
		Timestamp: "2024-03-19 16:45:33",
		Metadata: map[string]interface{}{
			"process":             "svchost.exe",
			"location":            "%TEMP%",
			"technique":           "Rootkit",
			"kernel_modification": true,
		},
		Explanation: "Rootkit installation with kernel modifications shows advanced malware installation.",
		Indicators:  []string{"Rootkit behavior", "Kernel hooks", "Hidden process"},
	},
	{
		Id:        "c2_1",
		Phase:     "command_control",
		Raw:       "2024-03-20 09:12:45 [Network Monitor] Suspicious beaconing detected: Host 10.0.1.45 communicating with 185.234.219.11:443 every 60 seconds with jitter of 10%. Traffic pattern matches Cobalt Strike beacon.",
		Source:    "Network Security Monitor",
		Severity:  "Critical",
		Timestamp: "2024-03-20 09:12:45",
		Metadata: map[string]interface{}{
			"internal_host":   "10.0.1.45",
			"c2_server":       "185.234.219.11:443",
			"beacon_interval": "60 seconds",
			"protocol":        "HTTPS",
		},
		Explanation: "Regular beaconing pattern to external server indicates established command and control channel.",
		Indicators:  []string{"Beaconing behavior", "Regular intervals", "External communication"},
	},
	{
		Id:        "c2_2",
		Phase:     "command_control",
		Raw:       "2024-03-20 11:30:22 [DLP] Data exfiltration alert: Unusual DNS queries detected with base64 encoded data in subdomains to ns1.evil-domain.com. Total 450MB of data transmitted via DNS tunneling.",
		Source:    "Data Loss Prevention",
		Severity:  "Critical",
		Timestamp: "2024-03-20 11:30:22",
		Metadata: map[string]interface{}{
			"technique":   "DNS tunneling",
			"destination": "ns1.evil-domain.com",
			"data_volume": "450MB",
			"encoding":    "Base64",
		},
		Explanation: "DNS tunneling for data exfiltration shows active C2 channel being used for data theft.",
		Indicators:  []string{"DNS tunneling", "Data encoding", "Large data transfer"},
	},
	{
		Id:        "action_1",
		Phase:     "actions_objectives",
		Raw:       "2024-03-21 14:45:33 [DLP] Mass data exfiltration detected: 15GB of sensitive files from Finance share compressed and uploaded to cloud storage. Files include \"Q1_Financial_Report.xlsx\", \"Customer_Database.csv\".",
		Source:    "Data Loss Prevention",
		Severity:  "Critical",
		Timestamp: "2024-03-21 14:45:33",
		Metadata: map[string]interface{}{
			"data_volume": "15GB",
			"file_types":  []string{"Financial reports", "Customer data"},
			"destination": "Cloud storage",
			"compression": true,
		},
		Explanation: "Large-scale data theft indicates attacker achieving their objective of stealing sensitive information.",
		Indicators:  []string{"Data exfiltration", "Sensitive files", "Large volume"},
	},
	{
		Id:        "action_2",
		Phase:     "actions_objectives",
		Raw:       "2024-03-21 16:20:11 [Security Alert] Ransomware deployment detected: All files on network shares being encrypted with .locked extension. Ransom note \"PAY_TO_DECRYPT.txt\" created in each directory.",
		Source:    "Endpoint Security",
		Severity:  "Critical",
		Timestamp: "2024-03-21 16:20:11",
		Metadata: map[string]interface{}{
			"ransomware_family": "Unknown",
			"file_extension":    ".locked",
			"ransom_note":       "PAY_TO_DECRYPT.txt",
			"affected_shares":   12,
		},
		Explanation: "Ransomware deployment represents final phase where attacker executes their primary objective.",
		Indicators:  []string{"File encryption", "Ransom note", "Mass impact"},
	},
}
