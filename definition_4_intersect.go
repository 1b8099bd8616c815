package meetingslots

// IntersectGapSequences merges two sorted, non overlapping gap sequences
// and returns their overlaps of positive length.
// On equal ends the pointer of the second sequence advances.
func IntersectGapSequences(a, b []TimeSlot) []TimeSlot {
	var result []TimeSlot

	var i, j int

	for i < len(a) && j < len(b) {
		overlap := TimeSlot{
			TimeStart: max(a[i].TimeStart, b[j].TimeStart),
			TimeEnd:   min(a[i].TimeEnd, b[j].TimeEnd),
		}

		if !overlap.IsEmpty() {
			result = append(result, overlap)
		}

		if a[i].TimeEnd < b[j].TimeEnd {
			i++
		} else {
			j++
		}
	}

	return result
}

// FilterByDuration keeps, in order, the slots at least duration minutes long.
func FilterByDuration(slots []TimeSlot, duration int) []TimeSlot {
	var result []TimeSlot

	for _, slot := range slots {
		if slot.Length() >= duration {
			result = append(result, slot)
		}
	}

	return result
}
