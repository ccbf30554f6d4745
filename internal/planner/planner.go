package planner

import (
	"fmt"

	"github.com/clipfit/clipfit/internal/config"
	"github.com/clipfit/clipfit/internal/probe"
)

// BuildPlan produces a complete FilePlan from config and probe data. This is
// the central decision point the pipeline calls once per run.
//
// Flow:
//  1. Compute the video bitrate budget for the target size
//  2. Decide compress vs clips (clips forced by --clips-only, otherwise
//     chosen when the budget falls below the quality floor)
//  3. For the clip path, plan the highlight segments
func BuildPlan(cfg *config.Config, md *probe.Metadata) *FilePlan {
	plan := &FilePlan{
		Compression: ComputeBitrate(cfg.TargetBytes(), md.Duration, cfg.AudioBitrate),
	}

	switch {
	case cfg.ClipsOnly:
		plan.Action = ActionClips
		plan.Note = "clips requested (--clips-only)"
	case plan.Compression.MeetsFloor(cfg.QualityFloor):
		plan.Action = ActionCompress
		plan.Note = fmt.Sprintf("achievable video bitrate %d b/s meets %d b/s floor",
			plan.Compression.VideoBitrate, cfg.QualityFloor)
	default:
		plan.Action = ActionClips
		plan.Note = fmt.Sprintf("achievable video bitrate %d b/s below %d b/s floor",
			plan.Compression.VideoBitrate, cfg.QualityFloor)
	}

	if plan.Action == ActionClips {
		plan.Clips = PlanClips(md.Duration, cfg.ClipCount, cfg.ClipDuration, cfg.EdgeMargin)
	}
	return plan
}

// ClipBudget computes the per-clip bitrate plan for one segment: the target
// size is split evenly across the planned clips so the whole set still fits
// under the target.
func ClipBudget(cfg *config.Config, plan *FilePlan, seg Segment) CompressionPlan {
	n := len(plan.Clips.Segments)
	if n == 0 {
		n = 1
	}
	return ComputeBitrate(cfg.TargetBytes()/int64(n), seg.Duration, cfg.AudioBitrate)
}
