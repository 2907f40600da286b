package catalog

// Title is the dashboard and report title.
const Title = "NEUROGEN-X: The Future of Prion Disease Treatment"

// Intro is the introductory paragraph shown under the title.
const Intro = "This interactive dashboard compares NEUROGEN-X, an AI- and nanotechnology-powered therapy, " +
	"with current treatments for Creutzfeldt-Jakob Disease (CJD), highlighting efficacy, cost, safety, and scalability."

// HighlightsTitle heads the highlights list.
const HighlightsTitle = "Why NEUROGEN-X is the Future"

// Highlights returns the bullet points that accompany the comparison.
func Highlights() []string {
	return []string{
		"Uses CRISPR-Cas13d for targeted prion degradation (94%+ efficacy in simulations).",
		"Nanofiber scaffolds loaded with BDNF/NGF enable true neural regeneration.",
		"Employs AI-based molecular GPS to ensure precision targeting.",
		"Biodegradable, non-toxic, and programmed to self-destruct in 72h to avoid accumulation.",
		"Cost-effective at $8,000, 150x cheaper than gene therapies ($1.2M).",
		"Scalable production with microfluidics and DNA origami by 2027.",
	}
}

// Sources returns the cited data sources.
func Sources() []string {
	return []string{
		"WHO Prion Disease Reports (2023)",
		"MIT Nanotech Lab (2024)",
		"NIH ASO Clinical Trials (2023)",
	}
}

// Disclaimer marks every rendered output as illustrative.
const Disclaimer = "Figures are illustrative constants, not results of a clinical or computational study."
