package topics

import (
	"sort"
	"strings"
)

const NotFound = "Topic not found. Please try another one."

var catalog = map[string]string{
	"firewall":   "A firewall is a network security device that monitors and controls incoming and outgoing network traffic based on predetermined security rules.",
	"encryption": "Encryption is the process of converting information or data into a code to prevent unauthorized access.",
	"phishing":   "Phishing is a type of cyber attack that uses disguised email as a weapon. The goal is to trick the email recipient into believing that the message is something they want or need, such as a request from their bank or a note from someone in their company.",
	"nmap":       "Nmap (Network Mapper) is an open source tool for network exploration and security auditing. It is used to discover hosts and services on a computer network by sending packets and analyzing the responses.",
}

// Key folds a requested topic to its catalog form.
func Key(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// Describe returns the description for topic, matched case-insensitively.
func Describe(topic string) (string, bool) {
	d, ok := catalog[Key(topic)]
	if !ok {
		return NotFound, false
	}
	return d, true
}

// Keys lists the known topics in alphabetical order.
func Keys() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
