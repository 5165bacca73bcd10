package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectChannel(t *testing.T) {
	tests := []struct {
		name   string
		sender string
		text   string
		want   Channel
	}{
		{name: "gpay sender token", sender: "VM-GPAY-S", want: ChannelGPay},
		{name: "display name in body", text: "you paid via Google Pay", want: ChannelGPay},
		{name: "phonepe sender", sender: "JM-PHONPE", want: ChannelPhonePe},
		{name: "paytm in body", text: "Paytm payment successful", want: ChannelPaytm},
		{name: "bank sender no channel", sender: "HDFC-Bank", text: "Sent Rs.50", want: ChannelNone},
		{name: "empty", want: ChannelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectChannel(tt.sender, tt.text))
		})
	}
}

func TestDetectChannelFromHint(t *testing.T) {
	assert.Equal(t, ChannelGPay, DetectChannelFromHint("/screenshots/gpay-receipt.png"))
	assert.Equal(t, ChannelPhonePe, DetectChannelFromHint("content://media/PhonePe/IMG1.png"))
	assert.Equal(t, ChannelPaytm, DetectChannelFromHint("paytm_20251018.jpg"))
	assert.Equal(t, ChannelNone, DetectChannelFromHint("/screenshots/IMG_2041.png"))
}
