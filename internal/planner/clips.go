package planner

// PlanClips distributes up to count non-overlapping clipDuration-second
// segments evenly across a video of the given total duration.
//
// A margin is excluded from the very start and end (intros and credits make
// poor highlights) whenever the remaining span still fits at least one
// clip; otherwise the full duration is used. The requested count is reduced
// until the usable span holds that many segments without overlap, so the
// returned plan never contains overlapping segments regardless of inputs.
//
// Pure and deterministic for fixed inputs.
func PlanClips(duration float64, count int, clipDuration, margin float64) ClipPlan {
	if duration <= 0 || count < 1 || clipDuration <= 0 {
		return ClipPlan{}
	}

	// A video shorter than one clip becomes a single whole-video segment.
	if duration <= clipDuration {
		return ClipPlan{Segments: []Segment{{Start: 0, Duration: duration}}}
	}

	offset := margin
	usable := duration - 2*margin
	if margin < 0 || usable < clipDuration {
		offset = 0
		usable = duration
	}

	// Even spacing at (usable-D)/(N-1) keeps segments apart only while
	// usable >= N*D; shrink N until that holds.
	for count > 1 && usable < float64(count)*clipDuration {
		count--
	}

	segments := make([]Segment, 0, count)
	if count == 1 {
		start := clampStart(offset+(usable-clipDuration)/2, duration, clipDuration)
		return ClipPlan{Segments: []Segment{{Start: start, Duration: clipDuration}}}
	}

	step := (usable - clipDuration) / float64(count-1)
	for i := 0; i < count; i++ {
		start := clampStart(offset+float64(i)*step, duration, clipDuration)
		segments = append(segments, Segment{Start: start, Duration: clipDuration})
	}
	return ClipPlan{Segments: segments}
}

// clampStart keeps start non-negative and the segment end inside the video.
func clampStart(start, duration, clipDuration float64) float64 {
	if start < 0 {
		return 0
	}
	if start+clipDuration > duration {
		return duration - clipDuration
	}
	return start
}
