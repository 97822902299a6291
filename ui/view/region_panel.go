package view

import (
	"strconv"

	"github.com/soocke/screen-watch-go/domain/region"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RegionPanel holds the four numeric region fields and the apply button.
type RegionPanel interface {
	Fields() []string
	SetFields(r region.Region)
}

type regionPanel struct {
	entries [region.FieldCount]*TEntryWidget
}

// NewRegionPanel builds the "Region Settings" frame inside parent. onApply
// receives the raw field texts.
func NewRegionPanel(parent *TFrameWidget, col int, initial region.Region, onApply func(fields []string)) RegionPanel {
	p := &regionPanel{}
	frame := TLabelframe(Txt("Region Settings"), Padding("5"))
	Grid(frame, In(parent), Row(0), Column(col), Padx("2m"))
	labels := [region.FieldCount]string{"X:", "Y:", "Width:", "Height:"}
	vals := initial.Values()
	for i, txt := range labels {
		Grid(TLabel(Txt(txt)), In(frame), Row(0), Column(2*i))
		e := TEntry(Width(6), Textvariable(strconv.Itoa(vals[i])))
		Grid(e, In(frame), Row(0), Column(2*i+1), Padx("0.3m"))
		Bind(e, "<Return>", Command(func() { onApply(p.Fields()) }))
		p.entries[i] = e
	}
	apply := TButton(Txt("Apply"), Command(func() { onApply(p.Fields()) }))
	Grid(apply, In(frame), Row(0), Column(2*region.FieldCount), Padx("1m"))
	return p
}

func (p *regionPanel) Fields() []string {
	out := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e.Textvariable())
	}
	return out
}

func (p *regionPanel) SetFields(r region.Region) {
	for i, v := range r.Values() {
		p.entries[i].Configure(Textvariable(strconv.Itoa(v)))
	}
}
