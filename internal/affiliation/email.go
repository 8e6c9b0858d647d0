// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package affiliation

import "strings"

// emailTrimSet is the punctuation stripped from around an email token.
// PubMed affiliations wrap addresses in parentheses, angle brackets, or end
// the sentence with a period.
const emailTrimSet = ".,()<>[]{};:"

// ExtractEmail scans the whitespace-delimited tokens of an affiliation for
// the first plausible email address: a token containing "@" with a "." in
// its domain part. The address is returned lower-cased with surrounding
// punctuation stripped, along with the affiliation text minus the token.
// When no address is found, email is empty and remaining is the input
// unchanged.
func ExtractEmail(text string) (email, remaining string) {
	for _, tok := range strings.Fields(text) {
		if !strings.Contains(tok, "@") {
			continue
		}
		candidate := strings.ToLower(strings.Trim(tok, emailTrimSet))
		at := strings.Index(candidate, "@")
		if at <= 0 || at == len(candidate)-1 {
			continue
		}
		if !strings.Contains(candidate[at+1:], ".") {
			continue
		}
		remaining = strings.TrimSpace(strings.Replace(text, tok, "", 1))
		return candidate, remaining
	}
	return "", text
}
