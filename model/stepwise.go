package model

// Stepwise performs backward elimination on AIC: starting from the full
// design, repeatedly refit with each remaining term removed and keep the
// removal that lowers AIC the most, stopping when no removal improves it.
// The intercept is never a candidate.
func Stepwise(d *Design) (*Fit, error) {
	cur := d

	var (
		best *Fit
		e    error
	)
	if best, e = OLS(cur); e != nil {
		return nil, e
	}

	for {
		var (
			bestDrop    *Design
			bestDropFit *Fit
		)

		for _, name := range cur.Names {
			if name == "intercept" {
				continue
			}

			var (
				cand *Design
				fit  *Fit
			)
			if cand, e = cur.Drop(name); e != nil {
				return nil, e
			}

			// a candidate that turns singular just isn't eligible
			if fit, e = OLS(cand); e != nil {
				continue
			}

			if fit.AIC < best.AIC && (bestDropFit == nil || fit.AIC < bestDropFit.AIC) {
				bestDrop, bestDropFit = cand, fit
			}
		}

		if bestDropFit == nil {
			return best, nil
		}

		cur, best = bestDrop, bestDropFit
	}
}
