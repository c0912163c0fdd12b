// Package report prints the step-by-step transcript of a Jordan-form run:
// numbered steps under 70-dash rules, matrices pretty-printed with
// column alignment, and the final check as True/False.
//
// The transcript is Russian by default; WithLanguage(language.English)
// switches every sentence. Styling (lipgloss) is opt-in with WithStyle so
// that plain output stays byte-stable for files and tests.
package report
