package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/dmitrijs2005/healthgate/internal/models"
)

// Diseases prints every supported disease and whether its model is loaded.
func (a *App) Diseases(ctx context.Context) error {
	views, err := a.backend.Diseases(ctx)
	if err != nil {
		return err
	}
	for _, v := range views {
		if v.Available {
			fmt.Fprintf(a.out, "  %-14s %s\n", v.Type, v.Title)
		} else {
			fmt.Fprintf(a.out, "  %-14s %s (unavailable: %s)\n", v.Type, v.Title, v.Reason)
		}
	}
	return nil
}

// Predict asks for each field of the chosen disease in model order and
// prints the diagnosis. Values are passed through as typed; the gateway
// validates them.
func (a *App) Predict(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return common.ErrUnauthorized
	}

	name := strings.Join(args, " ")
	if name == "" {
		var err error
		name, err = getSimpleText(a.reader, "Disease ("+a.diseaseNames()+")", a.out)
		if err != nil {
			return err
		}
	}

	dt, err := models.ParseDiseaseType(name)
	if err != nil {
		return err
	}
	spec, err := a.catalog.Get(dt)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %d values\n", spec.Title, len(spec.Fields))
	fields := make([]string, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		prompt := f.Prompt
		if f.Domain != "" {
			prompt += " [" + f.Domain + "]"
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		fields = append(fields, v)
	}

	res, err := a.backend.Predict(ctx, dt, fields)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n(request %s)\n", res.Diagnosis, res.RequestID)
	return nil
}

func (a *App) diseaseNames() string {
	specs := a.catalog.All()
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = string(s.Type)
	}
	return strings.Join(names, ", ")
}
