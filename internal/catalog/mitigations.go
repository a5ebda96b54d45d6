package catalog

import "killchain-analyzer-be/internal/entity"

// Mitigation options per phase, in fixed catalog order. The order matters:
// when two options share the top effectiveness tier, the first one wins
// the "best mitigation" selection.
var mitigationOptions = []entity.MitigationOption{
	{
		Id:            "recon_mit_1",
		Phase:         "reconnaissance",
		Name:          "Reduce Attack Surface",
		Description:   "Limit publicly exposed services and information",
		Icon:          "🛡️",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "recon_mit_2",
		Phase:         "reconnaissance",
		Name:          "Threat Intelligence Monitoring",
		Description:   "Monitor for reconnaissance activities targeting your organization",
		Icon:          "📊",
		Effectiveness: entity.EffectivenessMedium,
	},
	{
		Id:            "recon_mit_3",
		Phase:         "reconnaissance",
		Name:          "Honeypots and Deception",
		Description:   "Deploy decoy systems to detect and mislead attackers",
		Icon:          "🍯",
		Effectiveness: entity.EffectivenessMedium,
	},
	{
		Id:            "recon_mit_4",
		Phase:         "reconnaissance",
		Name:          "DNS Monitoring",
		Description:   "Monitor and alert on suspicious DNS queries",
		Icon:          "🔍",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "weapon_mit_1",
		Phase:         "weaponization",
		Name:          "Threat Intelligence Feeds",
		Description:   "Subscribe to IOC feeds to detect known malware",
		Icon:          "📰",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "weapon_mit_2",
		Phase:         "weaponization",
		Name:          "Vulnerability Management",
		Description:   "Patch systems to prevent exploit weaponization",
		Icon:          "🔧",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "weapon_mit_3",
		Phase:         "weaponization",
		Name:          "Security Awareness Training",
		Description:   "Train users to recognize weaponized content",
		Icon:          "🎓",
		Effectiveness: entity.EffectivenessMedium,
	},
	{
		Id:            "weapon_mit_4",
		Phase:         "weaponization",
		Name:          "Sandbox Analysis",
		Description:   "Analyze suspicious files in isolated environment",
		Icon:          "📦",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "delivery_mit_1",
		Phase:         "delivery",
		Name:          "Email Security Gateway",
		Description:   "Filter malicious emails and attachments",
		Icon:          "📧",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "delivery_mit_2",
		Phase:         "delivery",
		Name:          "Web Filtering",
		Description:   "Block access to malicious websites",
		Icon:          "🌐",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "delivery_mit_3",
		Phase:         "delivery",
		Name:          "Disable Macros",
		Description:   "Block macro execution in office documents",
		Icon:          "📄",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "delivery_mit_4",
		Phase:         "delivery",
		Name:          "Application Whitelisting",
		Description:   "Only allow approved applications to run",
		Icon:          "✅",
		Effectiveness: entity.EffectivenessVeryHigh,
	},
	{
		Id:            "exploit_mit_1",
		Phase:         "exploitation",
		Name:          "Patch Management",
		Description:   "Apply security patches immediately",
		Icon:          "🔄",
		Effectiveness: entity.EffectivenessVeryHigh,
	},
	{
		Id:            "exploit_mit_2",
		Phase:         "exploitation",
		Name:          "EDR Solution",
		Description:   "Deploy endpoint detection and response",
		Icon:          "💻",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "exploit_mit_3",
		Phase:         "exploitation",
		Name:          "Network Segmentation",
		Description:   "Isolate critical systems from general network",
		Icon:          "🔗",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "exploit_mit_4",
		Phase:         "exploitation",
		Name:          "Exploit Protection",
		Description:   "Enable DEP, ASLR, and CFG protections",
		Icon:          "🛡️",
		Effectiveness: entity.EffectivenessMedium,
	},
	{
		Id:            "install_mit_1",
		Phase:         "installation",
		Name:          "Application Control",
		Description:   "Prevent unauthorized software installation",
		Icon:          "🚫",
		Effectiveness: entity.EffectivenessVeryHigh,
	},
	{
		Id:            "install_mit_2",
		Phase:         "installation",
		Name:          "Privilege Management",
		Description:   "Remove local admin rights from users",
		Icon:          "👤",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "install_mit_3",
		Phase:         "installation",
		Name:          "Registry Monitoring",
		Description:   "Alert on suspicious registry modifications",
		Icon:          "📝",
		Effectiveness: entity.EffectivenessMedium,
	},
	{
		Id:            "install_mit_4",
		Phase:         "installation",
		Name:          "File Integrity Monitoring",
		Description:   "Detect unauthorized system file changes",
		Icon:          "📁",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "c2_mit_1",
		Phase:         "command_control",
		Name:          "Network Traffic Analysis",
		Description:   "Detect anomalous outbound connections",
		Icon:          "📡",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "c2_mit_2",
		Phase:         "command_control",
		Name:          "DNS Sinkholing",
		Description:   "Redirect malicious domains to internal server",
		Icon:          "🕳️",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "c2_mit_3",
		Phase:         "command_control",
		Name:          "Firewall Rules",
		Description:   "Block unauthorized outbound connections",
		Icon:          "🔥",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "c2_mit_4",
		Phase:         "command_control",
		Name:          "SSL/TLS Inspection",
		Description:   "Decrypt and inspect encrypted traffic",
		Icon:          "🔐",
		Effectiveness: entity.EffectivenessMedium,
	},
	{
		Id:            "action_mit_1",
		Phase:         "actions_objectives",
		Name:          "Data Backup and Recovery",
		Description:   "Maintain offline backups for ransomware recovery",
		Icon:          "💾",
		Effectiveness: entity.EffectivenessVeryHigh,
	},
	{
		Id:            "action_mit_2",
		Phase:         "actions_objectives",
		Name:          "DLP Solutions",
		Description:   "Prevent unauthorized data exfiltration",
		Icon:          "🔒",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "action_mit_3",
		Phase:         "actions_objectives",
		Name:          "Incident Response Plan",
		Description:   "Execute prepared response procedures",
		Icon:          "🚨",
		Effectiveness: entity.EffectivenessHigh,
	},
	{
		Id:            "action_mit_4",
		Phase:         "actions_objectives",
		Name:          "Network Isolation",
		Description:   "Immediately isolate affected systems",
		Icon:          "🔌",
		Effectiveness: entity.EffectivenessHigh,
	},
}
