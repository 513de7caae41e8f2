package cellview

import "inkcell-cli/internal/model"

// Banner is an advisory notice derived from a cell's tags. Banners never
// affect execution or storage.
type Banner string

const (
	BannerParametrized      Banner = "parametrized"
	BannerDefaultParameters Banner = "default-parameters"
)

// Reserved tag strings recognized by BannersFor. Any other tag is ignored
// here (other layers may use them for their own purposes).
const (
	TagParameters        = "parameters"
	TagDefaultParameters = "default parameters"
)

// BannersFor maps a cell's tag set to its advisory banners, in a fixed
// order: parameters first, default parameters second.
func BannersFor(meta model.CellMetadata) []Banner {
	var out []Banner
	if meta.HasTag(TagParameters) {
		out = append(out, BannerParametrized)
	}
	if meta.HasTag(TagDefaultParameters) {
		out = append(out, BannerDefaultParameters)
	}
	return out
}
