package topology

import (
	"errors"
	"fmt"
)

// Validate checks every invariant listed in spec §3 "Invariants on input"
// and returns every violation found, joined with errors.Join, rather than
// stopping at the first one. A nil return means the Topology is safe to
// hand to the horizon estimator and TEG builder.
//
// Checked invariants:
//   - NbDrones is positive.
//   - Exactly one START hub and exactly one END hub exist.
//   - START.MaxDrones and END.MaxDrones are both >= NbDrones.
//   - Every hub has MaxDrones >= 1.
//
// Duplicate connections, unknown endpoints, self-connections, and bad
// capacities are already rejected at AddConnection time and so are not
// re-checked here.
func (t *Topology) Validate() error {
	var errs []error

	if t.NbDrones <= 0 {
		errs = append(errs, ErrNoDrones)
	}

	var starts, ends int
	for _, name := range t.hubOrder {
		h := t.hubs[name]
		switch h.Category {
		case CategoryStart:
			starts++
		case CategoryEnd:
			ends++
		}
		if h.MaxDrones < 1 {
			errs = append(errs, fmt.Errorf("%w: hub %q has max_drones=%d", ErrBadCapacity, h.Name, h.MaxDrones))
		}
	}

	switch starts {
	case 0:
		errs = append(errs, ErrMissingStart)
	case 1:
		// ok
	default:
		errs = append(errs, ErrMultipleStart)
	}

	switch ends {
	case 0:
		errs = append(errs, ErrMissingEnd)
	case 1:
		// ok
	default:
		errs = append(errs, ErrMultipleEnd)
	}

	if start, ok := t.Start(); ok && start.MaxDrones < t.NbDrones {
		errs = append(errs, fmt.Errorf("%w: START %q has max_drones=%d, nb_drones=%d",
			ErrEndpointCapacityTooLow, start.Name, start.MaxDrones, t.NbDrones))
	}
	if end, ok := t.End(); ok && end.MaxDrones < t.NbDrones {
		errs = append(errs, fmt.Errorf("%w: END %q has max_drones=%d, nb_drones=%d",
			ErrEndpointCapacityTooLow, end.Name, end.MaxDrones, t.NbDrones))
	}

	return errors.Join(errs...)
}
