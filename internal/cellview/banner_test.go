package cellview

import (
	"reflect"
	"testing"

	"inkcell-cli/internal/model"
)

func TestBannersFor(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		want []Banner
	}{
		{"none", nil, nil},
		{"unrelated", []string{"slow", "draft"}, nil},
		{"parameters", []string{"parameters"}, []Banner{BannerParametrized}},
		{"default parameters", []string{"default parameters"}, []Banner{BannerDefaultParameters}},
		{"both in fixed order", []string{"default parameters", "parameters"},
			[]Banner{BannerParametrized, BannerDefaultParameters}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BannersFor(model.CellMetadata{Tags: tc.tags})
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("BannersFor(%v) = %v, want %v", tc.tags, got, tc.want)
			}
		})
	}
}
