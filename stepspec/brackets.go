package stepspec

import "fmt"

// ValidateBrackets checks that every closing bracket pairs with the
// most recent unmatched opener of the same class and that nothing is
// left open at the end of the step. It reports one diagnostic per
// offending token.
func ValidateBrackets(tokens []Token) []error {
	var errs []error
	var pending []Token

	for _, tok := range tokens {
		switch {
		case tok.IsOpeningBracket():
			pending = append(pending, tok)

		case tok.IsClosingBracket():
			if len(pending) == 0 {
				errs = append(errs, &parseError{
					pos: tok.Pos,
					msg: fmt.Sprintf("unmatched %s", tok.Label()),
				})
				continue
			}

			opener := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			if !opener.MatchesWith(tok) {
				errs = append(errs, &parseError{
					pos: tok.Pos,
					msg: fmt.Sprintf("mismatched %s, expected match for %s", tok.Label(), opener.Label()),
				})
			}
		}
	}

	for _, opener := range pending {
		errs = append(errs, &parseError{
			pos: opener.Pos,
			msg: fmt.Sprintf("unterminated %s", opener.Label()),
		})
	}

	return errs
}
