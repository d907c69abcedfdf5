package ats

// GetScoreInterpretation maps a score to its human-readable verdict. The
// strings are embedded verbatim in the analysis prompt and the generated
// report, so they carry their display formatting.
func GetScoreInterpretation(score int) string {
	switch {
	case score >= 90:
		return "🎯 **Exceptional Match** - Your resume is highly optimized for this position. Strong keyword alignment and relevant experience."
	case score >= 80:
		return "✅ **Good Match** - Your resume shows good compatibility with the job requirements. Minor optimizations could improve your chances."
	case score >= 70:
		return "⚠️ **Fair Match** - Your resume has moderate compatibility. Consider adding more relevant keywords and experience details."
	case score >= 60:
		return "❌ **Poor Match** - Your resume needs significant improvements to better align with the job requirements."
	default:
		return "🚫 **Very Poor Match** - Your resume requires major revisions to be considered for this position."
	}
}
