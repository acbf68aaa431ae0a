package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

// Format writes the client,available,held,total,locked summary to w, one
// row per client in ascending client_id order. Sorting happens once here,
// at output time, rather than on every balance update, to keep the hot
// path O(1).
func (p *Processor) Format(w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = false

	if err := writer.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	ids := make([]uint16, 0, len(p.clients))
	for id := range p.clients {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		c := p.clients[id]

		total, ok := c.total()
		if !ok {
			panic(fmt.Sprintf("ledger: I1 violated — available+held overflow for client %d at summary time", id))
		}

		row := []string{
			fmt.Sprintf("%d", id),
			c.available.String(),
			c.held.String(),
			total.String(),
			fmt.Sprintf("%t", c.locked),
		}

		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}
