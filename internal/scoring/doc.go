// Package scoring turns one institution's financial and admissions figures plus
// an applicant's profile into a 0-100 score, a letter tier and a debt payoff
// horizon.
//
// Score is a pure function. The order of its penalty and floor stages is
// significant: budget overrun multipliers run first, then the admission
// gatekeeper, then the elite GPA penalty, and the safety-net floor last, so a
// strong and affordable candidate can climb back above heavy penalties.
package scoring
