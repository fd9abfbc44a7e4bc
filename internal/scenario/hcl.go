package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/nvandessel/eurodiff/internal/models"
)

// hclScenarioFile is the top-level structure of an HCL scenario file:
//
//	scenario {
//	  id = 1
//	  country "France" {
//	    xl = 1
//	    yl = 4
//	    xh = 4
//	    yh = 6
//	  }
//	}
type hclScenarioFile struct {
	Scenarios []*hclScenario `hcl:"scenario,block"`
}

type hclScenario struct {
	ID        int           `hcl:"id"`
	Countries []*hclCountry `hcl:"country,block"`
}

type hclCountry struct {
	Name string `hcl:"name,label"`
	XL   int    `hcl:"xl"`
	YL   int    `hcl:"yl"`
	XH   int    `hcl:"xh"`
	YH   int    `hcl:"yh"`
}

func decodeHCL(data []byte, name string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
	}

	var parsed hclScenarioFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	scenarios := make([]Scenario, 0, len(parsed.Scenarios))
	for _, hs := range parsed.Scenarios {
		countries := make(map[string]models.Rect, len(hs.Countries))
		for _, hc := range hs.Countries {
			if _, dup := countries[hc.Name]; dup {
				return nil, fmt.Errorf("%w: %s: scenario %d declares country %q twice",
					models.ErrInvalidInput, name, hs.ID, hc.Name)
			}
			countries[hc.Name] = models.Rect{XL: hc.XL, YL: hc.YL, XH: hc.XH, YH: hc.YH}
		}
		scenarios = append(scenarios, Scenario{ID: hs.ID, Countries: countries})
	}
	return scenarios, nil
}
