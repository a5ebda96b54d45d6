package catalog

import "killchain-analyzer-be/internal/entity"

// The 7 Lockheed Martin Cyber Kill Chain phases, in attack order.
var killChainPhases = []entity.Phase{
	{
		Id:          "reconnaissance",
		Name:        "Reconnaissance",
		Description: "Attacker is gathering information about the target",
		Icon:        "🔍",
	},
	{
		Id:          "weaponization",
		Name:        "Weaponization",
		Description: "Creating malicious payload coupled with exploit",
		Icon:        "🔨",
	},
	{
		Id:          "delivery",
		Name:        "Delivery",
		Description: "Transmitting weapon to the target",
		Icon:        "📧",
	},
	{
		Id:          "exploitation",
		Name:        "Exploitation",
		Description: "Triggering exploit code on victim system",
		Icon:        "💥",
	},
	{
		Id:          "installation",
		Name:        "Installation",
		Description: "Installing malware on the target system",
		Icon:        "⚙️",
	},
	{
		Id:          "command_control",
		Name:        "Command & Control",
		Description: "Establishing channel for remote control",
		Icon:        "📡",
	},
	{
		Id:          "actions_objectives",
		Name:        "Actions on Objectives",
		Description: "Achieving the attacker's goals",
		Icon:        "🎯",
	},
}
