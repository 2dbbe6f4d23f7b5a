package lifecycle

// Patch is the field set a transition produces: the new status, the
// timestamp columns to stamp with "now" and the ones to null out. An
// empty patch means the transition is a no-op.
type Patch struct {
	Status Status
	Stamp  []string
	Clear  []string
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Status == "" && len(p.Stamp) == 0 && len(p.Clear) == 0
}

// Resolve computes the patch for moving one lifecycle instance from
// current to requested.
//
// Rules, in order:
//   - requested == current is a no-op; no timestamp is re-stamped.
//   - A terminal destination stamps only its own timestamp column.
//   - A destination inside the main flow stamps every column strictly
//     after current up to and including requested, so skipping review
//     steps still records them (PENDING straight to PAID stamps the
//     approval too). Re-entering from a terminal status stamps from the
//     status after the initial one: the original request timestamp is
//     history and keeps its value.
//   - Moving backward, or re-entering the main flow from a terminal
//     status, clears every main-flow column strictly after the
//     destination plus the flow's ResetOnReentry columns; leaving a
//     terminal status additionally clears its ClearOnLeave columns.
//
// A column both stamped and cleared by the same transition ends up
// stamped: the clear is dropped.
func (f Flow) Resolve(current, requested Status) Patch {
	if requested == current {
		return Patch{}
	}

	p := Patch{Status: requested}
	ci := f.MainIndex(current)
	ni := f.MainIndex(requested)

	if ni < 0 {
		// Terminal destination: no position in the main flow, no
		// intermediate inference. Prior main-flow stamps stay put.
		if col, ok := f.Stamps[requested]; ok {
			p.Stamp = append(p.Stamp, col)
		}
		return p
	}

	start := ci + 1
	if ci < 0 {
		start = 1
	}
	for i := start; i <= ni; i++ {
		if col, ok := f.Stamps[f.Main[i]]; ok {
			p.Stamp = append(p.Stamp, col)
		}
	}

	if ni < ci || ci < 0 {
		for i := ni + 1; i < len(f.Main); i++ {
			if col, ok := f.Stamps[f.Main[i]]; ok {
				p.Clear = append(p.Clear, col)
			}
		}
		p.Clear = append(p.Clear, f.ResetOnReentry...)
		if ci < 0 {
			p.Clear = append(p.Clear, f.ClearOnLeave[current]...)
		}
	}

	p.Clear = dropStamped(p.Clear, p.Stamp)
	return p
}

func dropStamped(clear, stamp []string) []string {
	if len(clear) == 0 {
		return clear
	}
	seen := make(map[string]bool, len(stamp))
	for _, c := range stamp {
		seen[c] = true
	}
	out := clear[:0]
	for _, c := range clear {
		if seen[c] {
			continue
		}
		seen[c] = true // also dedupes the clear list itself
		out = append(out, c)
	}
	return out
}
