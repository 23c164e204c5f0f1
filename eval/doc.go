// Package eval compares the lexical, semantic, and hybrid matching methods
// side by side over a shared vocabulary snapshot. It exists for tuning:
// when a query ranks oddly, the comparison shows which matcher the ranking
// came from and what each method would have returned on its own.
package eval
