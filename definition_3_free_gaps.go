package meetingslots

import "sort"

// ComputeFreeGaps walks the busy slots with a running cursor starting at
// minute 0 and returns the gaps in between, closing with the gap up to the
// work period end.
// Busy slots must be sorted by start and not overlapping, see NormalizeBusySlots.
// Only the end of the work period bounds the result.
func ComputeFreeGaps(busy []TimeSlot, workPeriod TimeSlot) []TimeSlot {
	var result []TimeSlot

	cursor := 0

	for _, slot := range busy {
		if slot.TimeStart > cursor {
			result = append(
				result,
				TimeSlot{
					TimeStart: cursor,
					TimeEnd:   slot.TimeStart,
				},
			)
		}

		cursor = max(cursor, slot.TimeEnd)
	}

	if cursor < workPeriod.TimeEnd {
		result = append(
			result,
			TimeSlot{
				TimeStart: cursor,
				TimeEnd:   workPeriod.TimeEnd,
			},
		)
	}

	return result
}

// NormalizeBusySlots returns a copy of the busy slots sorted by start,
// with overlapping or touching slots merged and empty slots dropped.
func NormalizeBusySlots(busy []TimeSlot) []TimeSlot {
	if len(busy) == 0 {
		return nil
	}

	sorted := make([]TimeSlot, 0, len(busy))

	for _, slot := range busy {
		if slot.IsEmpty() {
			continue
		}

		sorted = append(sorted, slot)
	}

	sort.Slice(
		sorted,
		func(i, j int) bool {
			if sorted[i].TimeStart != sorted[j].TimeStart {
				return sorted[i].TimeStart < sorted[j].TimeStart
			}

			return sorted[i].TimeEnd < sorted[j].TimeEnd
		},
	)

	var result []TimeSlot

	for _, slot := range sorted {
		last := len(result) - 1

		if last >= 0 && slot.TimeStart <= result[last].TimeEnd {
			result[last].TimeEnd = max(result[last].TimeEnd, slot.TimeEnd)

			continue
		}

		result = append(result, slot)
	}

	return result
}
