package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mengelbart/moqdemux"
)

func renderStats(stats []moqdemux.GroupStats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Group", "Streams", "Subgroups", "Objects", "Datagrams", "Bytes", "Complete"})
	for _, s := range stats {
		tw.AppendRow(table.Row{
			strconv.FormatUint(s.GroupID, 10),
			s.Streams,
			s.Subgroups,
			s.Objects,
			s.Datagrams,
			s.PayloadBytes,
			yesNo(s.EndOfGroup),
		})
	}
	configs := make([]table.ColumnConfig, 0, 6)
	for i := 2; i <= 6; i++ {
		configs = append(configs, table.ColumnConfig{
			Number:      i,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
