package resource

import "testing"

func TestToWireName(t *testing.T) {
	cases := map[string]string{
		"oneTwoThreeFour": "one-two-three-four",
		"avatarUrl":       "avatar-url",
		"winnerID":        "winner-id",
		"toID":            "to-id",
		"name":            "name",
		"aParameterID":    "a-parameter-id",
	}
	for domain, wire := range cases {
		if got := ToWireName(domain); got != wire {
			t.Errorf("ToWireName(%q) = %q, want %q", domain, got, wire)
		}
	}
}

func TestToDomainName(t *testing.T) {
	cases := map[string]string{
		"one-two-three-four": "oneTwoThreeFour",
		"avatar-url":         "avatarUrl",
		"a-parameter-id":     "aParameterID",
		"winner-id":          "winnerID",
		"name":               "name",
	}
	for wire, domain := range cases {
		if got := ToDomainName(wire); got != domain {
			t.Errorf("ToDomainName(%q) = %q, want %q", wire, got, domain)
		}
	}
}

func TestToDomainNameIDSuffixEdgeCases(t *testing.T) {
	// Only an exact trailing word "id" upper-cases.
	if got := ToDomainName("param-mid"); got != "paramMid" {
		t.Errorf("ToDomainName(param-mid) = %q, want paramMid", got)
	}
	// A lone "id" is not a suffix of anything.
	if got := ToDomainName("id"); got != "id" {
		t.Errorf("ToDomainName(id) = %q, want id", got)
	}
}

func TestNamingRoundTrip(t *testing.T) {
	// Every attribute name any schema declares must survive the trip to the
	// wire and back.
	for tag, sc := range Schemas {
		for _, attr := range sc.Attributes {
			wire := ToWireName(attr.Name)
			back := ToDomainName(wire)
			if back != attr.Name {
				t.Errorf("%s.%s: round trip via %q came back as %q", tag, attr.Name, wire, back)
			}
		}
	}
}

func TestNamingWireNamesUnique(t *testing.T) {
	for tag, sc := range Schemas {
		seen := make(map[string]string)
		for _, attr := range sc.Attributes {
			wire := ToWireName(attr.Name)
			if prev, dup := seen[wire]; dup {
				t.Errorf("%s: %s and %s map to the same wire name %q", tag, prev, attr.Name, wire)
			}
			seen[wire] = attr.Name
		}
	}
}
