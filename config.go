package naverbook

// Config carries the host-supplied options consulted during parsing.
// It is threaded explicitly into the detail parser at construction rather
// than read from ambient state.
type Config struct {
	// AllContributors includes translators and other contributor roles
	// in the author list, suffixed with their role.
	AllContributors bool

	// GenreTags maps source genre breadcrumb labels (matched
	// case-insensitively) to output tag strings. Breadcrumbs with no
	// mapping are dropped silently.
	GenreTags map[string][]string
}

// DefaultConfig returns the default configuration with the built-in
// genre mapping table.
func DefaultConfig() Config {
	return Config{
		AllContributors: true,
		GenreTags:       DefaultGenreTags(),
	}
}

// DefaultGenreTags returns the built-in genre-to-tag mapping. Keys use the
// catalog's breadcrumb form, nested labels joined with " > ".
func DefaultGenreTags() map[string][]string {
	return map[string][]string{
		"Anthologies":                 {"Anthologies"},
		"Adventure":                   {"Adventure"},
		"Adult Fiction":               {"Adult"},
		"Adult":                       {"Adult"},
		"Art":                         {"Art"},
		"Biography":                   {"Biography"},
		"Biography Memoir":            {"Biography"},
		"Business":                    {"Business"},
		"Chick-lit":                   {"Chick-lit"},
		"Childrens":                   {"Childrens"},
		"Classics":                    {"Classics"},
		"Comics":                      {"Comics"},
		"Graphic Novels Comics":       {"Comics"},
		"Contemporary":                {"Contemporary"},
		"Cookbooks":                   {"Cookbooks"},
		"Crime":                       {"Crime"},
		"Fantasy":                     {"Fantasy"},
		"Feminism":                    {"Feminism"},
		"Gardening":                   {"Gardening"},
		"Gay":                         {"Gay"},
		"Glbt":                        {"Gay"},
		"Health":                      {"Health"},
		"History":                     {"History"},
		"Historical Fiction":          {"Historical"},
		"Horror":                      {"Horror"},
		"Comedy":                      {"Humour"},
		"Humor":                       {"Humour"},
		"Inspirational":               {"Inspirational"},
		"Sequential Art > Manga":      {"Manga"},
		"Modern":                      {"Modern"},
		"Music":                       {"Music"},
		"Mystery":                     {"Mystery"},
		"Non Fiction":                 {"Non-Fiction"},
		"Paranormal":                  {"Paranormal"},
		"Religion":                    {"Religion"},
		"Philosophy":                  {"Philosophy"},
		"Politics":                    {"Politics"},
		"Poetry":                      {"Poetry"},
		"Psychology":                  {"Psychology"},
		"Reference":                   {"Reference"},
		"Romance":                     {"Romance"},
		"Science":                     {"Science"},
		"Science Fiction":             {"Science Fiction"},
		"Science Fiction Fantasy":     {"Science Fiction", "Fantasy"},
		"Self Help":                   {"Self Help"},
		"Sociology":                   {"Sociology"},
		"Spirituality":                {"Spirituality"},
		"Suspense":                    {"Suspense"},
		"Thriller":                    {"Thriller"},
		"Travel":                      {"Travel"},
		"Paranormal > Vampires":       {"Vampires"},
		"War":                         {"War"},
		"Western":                     {"Western"},
		"Language > Writing":          {"Writing"},
		"Writing > Essays":            {"Writing"},
		"Young Adult":                 {"Young Adult"},
	}
}
