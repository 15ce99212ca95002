package topology

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"
)

// WriteRuleTables prints one table per security policy, in tier order.
func (t *Topology) WriteRuleTables(w io.Writer) error {
	for i, tier := range Tiers {
		p := t.PolicyForTier(tier)
		if p == nil {
			continue
		}

		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		subnet := "-"
		if s := t.SubnetForTier(tier); s != nil {
			subnet = fmt.Sprintf("%s (%s)", s.Name, s.AddressPrefix)
		}
		if _, err := fmt.Fprintf(w, "%s tier: %s on %s\n", tier, p.Name, subnet); err != nil {
			return err
		}

		table := uitable.New()
		table.MaxColWidth = 50
		table.RightAlign(0)
		table.AddRow("PRIORITY", "NAME", "ACCESS", "PROTOCOL", "SOURCE", "PORT")
		for _, r := range p.Rules {
			table.AddRow(r.Priority, r.Name, r.Access, r.Protocol, r.SourceAddressPrefix, r.DestinationPortRange)
		}

		if _, err := fmt.Fprintln(w, table); err != nil {
			return err
		}
	}

	return nil
}
