package domain

import "testing"

func TestParseFarmAction(t *testing.T) {
	tests := []struct {
		input    string
		expected FarmAction
	}{
		{"TILL", FarmTill},
		{"till", FarmTill},
		{"Sow", FarmSow},
		{"WATER", FarmWater},
		{"harvest", FarmHarvest},
		{"INSPECT", FarmInspect},
		{"DIG", FarmNone},
		{"", FarmNone},
	}

	for _, tt := range tests {
		result := ParseFarmAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseFarmAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestFarmAction_String(t *testing.T) {
	tests := []struct {
		action   FarmAction
		expected string
		past     string
	}{
		{FarmTill, "TILL", "TILLED"},
		{FarmSow, "SOW", "SOWED"},
		{FarmInspect, "INSPECT", "INSPECT"},
		{FarmAction(99), "UNKNOWN", "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("FarmAction(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
		if got := tt.action.PastTense(); got != tt.past {
			t.Errorf("FarmAction(%d).PastTense() = %q, want %q", tt.action, got, tt.past)
		}
	}
}

func TestParseShopAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ShopAction
	}{
		{"BUY", ShopBuy},
		{"sell", ShopSell},
		{"steal", ShopNone},
	}

	for _, tt := range tests {
		if got := ParseShopAction(tt.input); got != tt.expected {
			t.Errorf("ParseShopAction(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
