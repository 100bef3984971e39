package cms

import "strings"

// The Pods plugin serializes empty relation fields as false, and some of them
// as []. Both forms are rewritten before decoding.
var (
	// поля-списки: false -> null, [] остаётся
	listFields = []string{
		"address_and_coordinate",
		"visible_for_regions",
		"taggar",
		"transaktionsform",
		"huvudtaggar",
		"subtaggar",
		"page_type",
	}
	// поля-объекты и числа: false и [] -> null
	scalarFields = []string{
		"main_image",
		"grupp",
		"acf",
	}
	// строковые поля: false -> null, [] -> "0"
	stringFields = []string{
		"hide",
	}
)

var bodyReplacer = newBodyReplacer()

func newBodyReplacer() *strings.Replacer {
	var pairs []string
	for _, f := range listFields {
		pairs = append(pairs, `"`+f+`":false`, `"`+f+`":null`)
	}
	for _, f := range scalarFields {
		pairs = append(pairs,
			`"`+f+`":false`, `"`+f+`":null`,
			`"`+f+`":[]`, `"`+f+`":null`)
	}
	for _, f := range stringFields {
		pairs = append(pairs,
			`"`+f+`":false`, `"`+f+`":null`,
			`"`+f+`":[]`, `"`+f+`":"0"`)
	}
	return strings.NewReplacer(pairs...)
}

func normalizeBody(body []byte) []byte {
	return []byte(bodyReplacer.Replace(string(body)))
}
