package config

// DefaultChromeMarkers returns substrings that mark a captured text blob as
// host-page UI chrome, script content, or an echoed prompt rather than a
// real answer. The list is host-specific by nature; keep it curated here so
// it can be updated without touching the detector state machine.
func DefaultChromeMarkers() []string {
	return []string{
		// Composer / product chrome
		"Ask anything",
		"How can Grok help",
		"DeepSearch",
		"DeeperSearch",
		"Think Mode",
		"Upgrade to SuperGrok",
		"Edit Image",
		"Create Images",

		// Chat-history navigation
		"hours ago",
		"days ago",
		"Last 7 Days",
		"Last 30 Days",

		// Echoed prompt
		"Provide a historical summary of",
		"Historical Context and Summary",

		// Script / markup leakage
		"function(",
		"window.",
		"document.querySelector",
		"<script",
		"=>",
	}
}

// DefaultSentenceDenylist returns substrings that disqualify an individual
// sentence during extraction. Narrower than the whole-text chrome markers:
// a single leaked navigation label inside an otherwise good answer should
// drop that sentence, not the answer.
func DefaultSentenceDenylist() []string {
	return []string{
		"Provide a historical summary of",
		"Today",
		"Yesterday",
		"hours ago",
		"days ago",
		"Ask anything",
		"DeepSearch",
		"function(",
		"window.",
		"<script",
		"=>",
	}
}

// DefaultSalienceKeywords returns the lexicon used to score undated
// sentences. A sentence mentioning more of these themes ranks higher when
// filling the undated slots of a timeline.
func DefaultSalienceKeywords() []string {
	return []string{
		"culture",
		"cultural",
		"community",
		"influence",
		"religion",
		"religious",
		"cuisine",
		"identity",
		"commerce",
		"trade",
		"tradition",
		"heritage",
		"migration",
		"settlement",
	}
}

// DefaultNoiseYears returns four-digit years that appear in the host UI
// (release names, nav labels) far more often than in real answers, and are
// therefore rejected as dates. Tuned against one host UI; retune as needed.
func DefaultNoiseYears() []int {
	return []int{2024, 2025}
}
