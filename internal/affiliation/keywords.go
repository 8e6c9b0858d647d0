// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package affiliation

// academicKeywords mark an affiliation segment as a university, hospital, or
// other research institution. Matched as whole tokens or space-bounded
// phrases, never as bare substrings ("institute" does not match
// "Institutes").
var academicKeywords = []string{
	"university",
	"college",
	"institute",
	"institution",
	"school",
	"academy",
	"hospital",
	"clinic",
	"infirmary",
	"faculty",
	"polytechnic",
	"medical center",
	"medical centre",
	"research center",
	"research centre",
}

// companyKeywords mark an affiliation as a commercial entity: legal-form
// suffixes, sector terms, and the major pharmaceutical companies that appear
// in PubMed affiliations without any corporate suffix.
var companyKeywords = []string{
	// Legal forms.
	"inc",
	"ltd",
	"llc",
	"corp",
	"corporation",
	"company",
	"gmbh",
	"ag",
	"plc",
	"bv",
	"srl",
	// Sector terms.
	"pharma",
	"pharmaceutical",
	"pharmaceuticals",
	"biopharma",
	"biopharmaceutical",
	"biopharmaceuticals",
	"biotech",
	"biotechnology",
	"bioscience",
	"biosciences",
	"therapeutics",
	"diagnostics",
	"genomics",
	// Major pharma/biotech names seen without a legal suffix.
	"pfizer",
	"novartis",
	"roche",
	"genentech",
	"merck",
	"astrazeneca",
	"sanofi",
	"gsk",
	"glaxosmithkline",
	"bayer",
	"abbvie",
	"abbott",
	"amgen",
	"gilead",
	"biogen",
	"moderna",
	"regeneron",
	"takeda",
	"lilly",
	"boehringer",
	"janssen",
	"novo nordisk",
	"bristol myers squibb",
	"bristol-myers squibb",
}

// noiseWords flag comma segments that name an organizational unit or contact
// detail rather than the organization itself. Matched as substrings, so
// "R&D" and stray "@" fragments are caught too.
var noiseWords = []string{
	"department",
	"division",
	"unit",
	"group",
	"team",
	"laboratory",
	"research",
	"development",
	"r&d",
	"@",
	"email",
	"e-mail",
	"address",
	"tel",
	"fax",
}
