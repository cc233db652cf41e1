package creator

import (
	"context"

	"github.com/forgelight/creator-api/internal/engine"
	"github.com/forgelight/creator-api/internal/errors"
	"github.com/forgelight/creator-api/internal/services/creator"
)

// DerivePower costs a power from its selected parts plus the mechanic parts
// synthesized from its structured configuration, and renders the display
// strings. Stale part selections are re-resolved by id against the current
// snapshot before aggregation.
func (o *Orchestrator) DerivePower(ctx context.Context, input *creator.DerivePowerInput) (*creator.DerivePowerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	snap, err := o.catalog.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog snapshot")
	}

	cfg := input.Config
	cfg.Duration = engine.SetDurationModifiers(cfg.Duration,
		cfg.Duration.Focus, cfg.Duration.NoHarm, cfg.Duration.EndsOnActivation, cfg.Duration.Sustain)

	mechOut, err := o.engine.BuildMechanicParts(ctx, &engine.BuildMechanicPartsInput{
		Config:   cfg,
		Snapshot: snap,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build mechanic parts")
	}

	parts := engine.ResolveParts(input.Parts, snap)
	parts = append(parts, mechOut.Parts...)

	costOut, err := o.engine.AggregateCosts(ctx, &engine.AggregateCostsInput{
		Parts:    parts,
		Snapshot: snap,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate costs")
	}

	displayOut, err := o.engine.DeriveMechanicDisplay(ctx, &engine.DeriveMechanicDisplayInput{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive display strings")
	}

	return &creator.DerivePowerOutput{
		TotalEnergy: costOut.TotalEnergy,
		TotalTP:     costOut.TotalTP,
		TPBreakdown: costOut.TPBreakdown,
		Display:     displayOut,
	}, nil
}

// UpdatePowerDuration applies duration transitions in order: type, then
// value, then modifiers. Each transition atomically clears modifiers the
// new effective duration no longer permits.
func (o *Orchestrator) UpdatePowerDuration(_ context.Context, input *creator.UpdatePowerDurationInput) (*creator.UpdatePowerDurationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	d := input.Duration
	if input.SetType != nil {
		d = engine.SetDurationType(d, *input.SetType)
	}
	if input.SetValue != nil {
		d = engine.SetDurationValue(d, *input.SetValue)
	}
	if input.SetModifiers != nil {
		m := input.SetModifiers
		d = engine.SetDurationModifiers(d, m.Focus, m.NoHarm, m.EndsOnActivation, m.Sustain)
	}

	return &creator.UpdatePowerDurationOutput{Duration: d}, nil
}
