package model

import "strings"

// Channel identifies the payment rail or app a message originated from,
// as opposed to the issuing bank.
type Channel string

// Known payment channels.
const (
	ChannelNone    Channel = ""
	ChannelGPay    Channel = "gpay"
	ChannelPhonePe Channel = "phonepe"
	ChannelPaytm   Channel = "paytm"
)

// channelTokens maps each channel to the lowercase tokens that identify it in
// a sender id or message body. Sender ids look like "VM-GPAY-S" or "JM-PHONPE";
// display names show up in the body of app notifications.
var channelTokens = map[Channel][]string{
	ChannelGPay:    {"gpay", "google pay", "googlepay"},
	ChannelPhonePe: {"phonepe", "phonpe"},
	ChannelPaytm:   {"paytm", "pytm"},
}

// DetectChannel inspects the sender identity and message text for a known
// channel's sender token or display name. Returns ChannelNone when nothing
// matches.
func DetectChannel(sender, text string) Channel {
	haystack := strings.ToLower(sender + " " + text)
	for _, ch := range []Channel{ChannelGPay, ChannelPhonePe, ChannelPaytm} {
		for _, tok := range channelTokens[ch] {
			if strings.Contains(haystack, tok) {
				return ch
			}
		}
	}
	return ChannelNone
}

// DetectChannelFromHint resolves a channel from an image source identifier
// (file path or content URI of a receipt screenshot). Only the three
// supported receipt channels are recognized, by substring match.
func DetectChannelFromHint(sourceHint string) Channel {
	hint := strings.ToLower(sourceHint)
	for _, ch := range []Channel{ChannelGPay, ChannelPhonePe, ChannelPaytm} {
		for _, tok := range channelTokens[ch] {
			if strings.Contains(hint, tok) {
				return ch
			}
		}
	}
	return ChannelNone
}
