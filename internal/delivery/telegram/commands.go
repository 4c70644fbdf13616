package telegram

import (
	"errors"
	"regexp"
	"strings"
)

const WelcomeText = `👋 Welcome to Crypto Price Alert!

📊 I will notify you when cryptocurrencies reach your target prices.

Quick Start:
• Set alerts with /alert command
• View your alerts with /alerts
• Get help anytime with /help

🚀 Ready to start tracking crypto prices?`

const HelpText = `🔔 Crypto Price Alerts

📝 Set Alert:
/alert <coin> <operator> <price>
Examples:
/alert BTC > 50000
/alert ETH < 2000

📋 Manage Alerts:
/alerts - View your alerts
/remove <number> - Remove alert by number
/remove <coin> - Remove alerts by coin
/removeall - Clear all alerts
Examples:
/remove 1
/remove BTC

💡 Note:
• Supports both full name and symbol (Bitcoin, BTC)
• You can set multiple alerts for the same coin
• One alert triggers once
• Check numbers with /alerts
• Remove alerts by coin or number.`

var ErrInvalidArguments = errors.New("invalid arguments")

// alertArgsPattern matches "<coin> <operator> <price>" where the operator is
// "<" or ">", tolerating missing whitespace around the operator and multi-word
// coin names.
var alertArgsPattern = regexp.MustCompile(`^([\w\s]+?)\s*([<>])\s*(\d*\.?\d+)$`)

// ParseAlertArgs parses the arguments of /alert into a coin query, a
// direction flag and the raw target price.
func ParseAlertArgs(args string) (coin string, isGreaterThan bool, target string, err error) {
	match := alertArgsPattern.FindStringSubmatch(strings.TrimSpace(args))
	if match == nil {
		return "", false, "", ErrInvalidArguments
	}
	return strings.TrimSpace(match[1]), match[2] == ">", match[3], nil
}

// isAllDigits reports whether s is a plain positive integer, which /remove
// treats as a 1-based alert number rather than a coin query.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
