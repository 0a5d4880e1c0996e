package service

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/catalog"
	"github.com/alexanderramin/compass/internal/domain"
)

// lookupCode maps a catalog lookup kind onto its use-case error code.
func lookupCode(kind string) app.ErrorCode {
	switch kind {
	case "challenge":
		return app.ErrUnknownChallenge
	case "urgency":
		return app.ErrUnknownUrgency
	case "scope":
		return app.ErrUnknownScope
	case "question":
		return app.ErrUnknownQuestion
	case "option":
		return app.ErrUnknownOption
	case "tool":
		return app.ErrUnknownTool
	case "plan":
		return app.ErrInvalidPlan
	default:
		return app.ErrInternalError
	}
}

// asDiagnoseError converts catalog lookup failures into *app.DiagnoseError.
// Other errors pass through unchanged.
func asDiagnoseError(err error) error {
	var lookup *catalog.LookupError
	if errors.As(err, &lookup) {
		return &app.DiagnoseError{Code: lookupCode(lookup.Kind), Message: lookup.Error()}
	}
	return err
}

func asWizardError(err error) error {
	var lookup *catalog.LookupError
	if errors.As(err, &lookup) {
		return &app.WizardError{Code: lookupCode(lookup.Kind), Message: lookup.Error()}
	}
	return err
}

func validatePlan(p domain.Plan) error {
	if domain.PlanRank(p) < 0 {
		return &app.DiagnoseError{Code: app.ErrInvalidPlan, Message: fmt.Sprintf("unknown plan %q", p)}
	}
	return nil
}

// requireFeature returns *app.FeatureLockedError when plan lacks feature.
func requireFeature(cat *catalog.Catalog, plan domain.Plan, feature domain.Feature) error {
	if cat.HasFeature(plan, feature) {
		return nil
	}
	required, _ := cat.MinimumPlanFor(feature)
	return &app.FeatureLockedError{Feature: feature, Plan: plan, Required: required}
}
