package view

import (
	"image"
	"image/color"

	"github.com/soocke/screen-watch-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Preview shows the most recent capture at a fixed size.
type Preview interface {
	UpdatePreview(img image.Image)
	Reset()
}

type preview struct {
	label *LabelWidget
	photo *Img // current Tk photo; deleted on replacement
	w, h  int
}

// NewPreview creates the caption and image label on rows row and row+1.
func NewPreview(row, w, h int) Preview {
	caption := TLabel(Txt("Current Image"))
	Grid(caption, Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"))
	p := &preview{w: w, h: h}
	p.photo = NewPhoto(Data(images.EncodePNG(images.Placeholder(w, h, color.Gray{Y: 0x40}))))
	p.label = Label(Image(p.photo), Borderwidth(1), Relief("sunken"))
	Grid(p.label, Row(row+1), Column(0), Columnspan(2), Padx("0.4m"), Pady("0.4m"))
	return p
}

func (p *preview) UpdatePreview(img image.Image) {
	if p.label == nil || img == nil {
		return
	}
	p.replace(images.EncodePNG(img))
}

func (p *preview) Reset() {
	p.replace(images.EncodePNG(images.Placeholder(p.w, p.h, color.Gray{Y: 0x40})))
}

func (p *preview) replace(png []byte) {
	if len(png) == 0 {
		return
	}
	if p.photo != nil {
		p.photo.Delete()
	}
	p.photo = NewPhoto(Data(png))
	p.label.Configure(Image(p.photo))
}
