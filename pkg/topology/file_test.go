package topology

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	utilerror "github.com/Azure/tierdeploy/test/util/error"
)

func TestMarshalRoundTrip(t *testing.T) {
	b, err := Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "topology.yaml")
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Error(diff)
	}
}

func TestUnmarshal(t *testing.T) {
	for _, tt := range []struct {
		name    string
		doc     string
		check   func(*testing.T, *Topology)
		wantErr string
	}{
		{
			name: "rule defaults are filled in",
			doc: `
policies:
- name: web-nsg
  tier: web
  rules:
  - name: Allow-HTTP
    priority: 100
    access: Allow
    protocol: Tcp
    sourceAddressPrefix: "*"
    destinationPortRange: "80"
`,
			check: func(t *testing.T, topo *Topology) {
				want := Rule{
					Name:                     "Allow-HTTP",
					Priority:                 100,
					Direction:                DirectionInbound,
					Access:                   AccessAllow,
					Protocol:                 ProtocolTCP,
					SourceAddressPrefix:      Any,
					SourcePortRange:          Any,
					DestinationAddressPrefix: Any,
					DestinationPortRange:     "80",
				}
				if diff := cmp.Diff(want, topo.Policies[0].Rules[0]); diff != "" {
					t.Error(diff)
				}
			},
		},
		{
			name:    "unknown fields are rejected",
			doc:     "resourceGroup: rg\nregion: westus\n",
			wantErr: `unknown field "region"`,
		},
		{
			name: "JSON is accepted",
			doc:  `{"resourceGroup": "rg-json", "location": "westeurope"}`,
			check: func(t *testing.T, topo *Topology) {
				if topo.ResourceGroup != "rg-json" || topo.Location != "westeurope" {
					t.Errorf("got %#v", topo)
				}
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			topo, err := Unmarshal([]byte(tt.doc))
			if tt.wantErr != "" {
				utilerror.AssertErrorContains(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, topo)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("got %v", err)
	}
}

func TestWriteRuleTables(t *testing.T) {
	var sb strings.Builder
	if err := Default().WriteRuleTables(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	for _, want := range []string{
		"web tier: web-nsg on web-subnet (10.0.1.0/24)",
		"app tier: app-nsg on app-subnet (10.0.2.0/24)",
		"db tier: db-nsg on db-subnet (10.0.3.0/24)",
		"Allow-PostgreSQL-From-App",
		"Deny-All-Inbound",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "web tier") > strings.Index(out, "app tier") ||
		strings.Index(out, "app tier") > strings.Index(out, "db tier") {
		t.Errorf("tiers out of order:\n%s", out)
	}
}
