// Package books provides the static catalog of the 66 canonical books and
// the read-only registry used to resolve free-text book references into
// provider-specific identifiers.
package books

// Testament tags a book as Old or New Testament.
type Testament string

// Testament constants.
const (
	OldTestamentTag Testament = "OT"
	NewTestamentTag Testament = "NT"
)

// Book is one immutable catalog record. Each book carries the external
// identifiers required by the content providers:
//
//   - Code: USFM-style three-letter code (verse-text API)
//   - Abbrev: short abbreviation, case-sensitive (commentary sections)
//   - NoSpaceID: identifier without spaces (morphology archive)
//   - WorkAbbrev: composite-work section abbreviation (commentary archive)
//   - Volume: commentary volume number 1-6
type Book struct {
	Number     int
	Name       string
	Testament  Testament
	Code       string
	Abbrev     string
	NoSpaceID  string
	WorkAbbrev string
	Volume     int
	Aliases    []string
}

// catalog lists all 66 books in canonical order. NoSpaceID defaults to the
// name with spaces removed and WorkAbbrev defaults to Abbrev; both are
// filled in when the registry indexes are built. Aliases are lowercase and
// include common abbreviations and misspellings; the canonical name and
// the other identifiers are indexed automatically.
var catalog = []Book{
	{Number: 1, Name: "Genesis", Testament: OldTestamentTag, Code: "GEN", Abbrev: "Gen", Volume: 1, Aliases: []string{"gen", "ge", "gn"}},
	{Number: 2, Name: "Exodus", Testament: OldTestamentTag, Code: "EXO", Abbrev: "Exod", Volume: 1, Aliases: []string{"exod", "exo", "ex"}},
	{Number: 3, Name: "Leviticus", Testament: OldTestamentTag, Code: "LEV", Abbrev: "Lev", Volume: 1, Aliases: []string{"lev", "lv"}},
	{Number: 4, Name: "Numbers", Testament: OldTestamentTag, Code: "NUM", Abbrev: "Num", Volume: 1, Aliases: []string{"num", "nm", "nb"}},
	{Number: 5, Name: "Deuteronomy", Testament: OldTestamentTag, Code: "DEU", Abbrev: "Deut", Volume: 1, Aliases: []string{"deut", "deu", "dt", "dueteronomy"}},
	{Number: 6, Name: "Joshua", Testament: OldTestamentTag, Code: "JOS", Abbrev: "Josh", Volume: 2, Aliases: []string{"josh", "jos", "jsh"}},
	{Number: 7, Name: "Judges", Testament: OldTestamentTag, Code: "JDG", Abbrev: "Judg", Volume: 2, Aliases: []string{"judg", "jdg", "jg"}},
	{Number: 8, Name: "Ruth", Testament: OldTestamentTag, Code: "RUT", Abbrev: "Ruth", Volume: 2, Aliases: []string{"rut", "ru", "rth"}},
	{Number: 9, Name: "1 Samuel", Testament: OldTestamentTag, Code: "1SA", Abbrev: "1Sam", Volume: 2, Aliases: []string{"1 sam", "1sam", "1 sa", "i samuel", "i sam", "first samuel"}},
	{Number: 10, Name: "2 Samuel", Testament: OldTestamentTag, Code: "2SA", Abbrev: "2Sam", Volume: 2, Aliases: []string{"2 sam", "2sam", "2 sa", "ii samuel", "ii sam", "second samuel"}},
	{Number: 11, Name: "1 Kings", Testament: OldTestamentTag, Code: "1KI", Abbrev: "1Kgs", Volume: 2, Aliases: []string{"1 kgs", "1kgs", "1 ki", "i kings", "first kings"}},
	{Number: 12, Name: "2 Kings", Testament: OldTestamentTag, Code: "2KI", Abbrev: "2Kgs", Volume: 2, Aliases: []string{"2 kgs", "2kgs", "2 ki", "ii kings", "second kings"}},
	{Number: 13, Name: "1 Chronicles", Testament: OldTestamentTag, Code: "1CH", Abbrev: "1Chr", Volume: 2, Aliases: []string{"1 chr", "1chr", "1 chron", "i chronicles", "first chronicles"}},
	{Number: 14, Name: "2 Chronicles", Testament: OldTestamentTag, Code: "2CH", Abbrev: "2Chr", Volume: 2, Aliases: []string{"2 chr", "2chr", "2 chron", "ii chronicles", "second chronicles"}},
	{Number: 15, Name: "Ezra", Testament: OldTestamentTag, Code: "EZR", Abbrev: "Ezra", Volume: 2, Aliases: []string{"ezr"}},
	{Number: 16, Name: "Nehemiah", Testament: OldTestamentTag, Code: "NEH", Abbrev: "Neh", Volume: 2, Aliases: []string{"neh", "ne", "nehemia"}},
	{Number: 17, Name: "Esther", Testament: OldTestamentTag, Code: "EST", Abbrev: "Esth", Volume: 2, Aliases: []string{"esth", "est", "es"}},
	{Number: 18, Name: "Job", Testament: OldTestamentTag, Code: "JOB", Abbrev: "Job", Volume: 3, Aliases: []string{"jb"}},
	{Number: 19, Name: "Psalms", Testament: OldTestamentTag, Code: "PSA", Abbrev: "Ps", Volume: 3, Aliases: []string{"ps", "psa", "psalm", "pslm", "psm", "pslams"}},
	{Number: 20, Name: "Proverbs", Testament: OldTestamentTag, Code: "PRO", Abbrev: "Prov", Volume: 3, Aliases: []string{"prov", "pro", "prv", "pr"}},
	{Number: 21, Name: "Ecclesiastes", Testament: OldTestamentTag, Code: "ECC", Abbrev: "Eccl", Volume: 3, Aliases: []string{"eccl", "ecc", "ec", "qoheleth", "ecclesiastics"}},
	{Number: 22, Name: "Song of Solomon", Testament: OldTestamentTag, Code: "SNG", Abbrev: "Song", Volume: 3, Aliases: []string{"song", "song of songs", "sos", "canticles", "cant"}},
	{Number: 23, Name: "Isaiah", Testament: OldTestamentTag, Code: "ISA", Abbrev: "Isa", Volume: 4, Aliases: []string{"isa", "is", "isiah"}},
	{Number: 24, Name: "Jeremiah", Testament: OldTestamentTag, Code: "JER", Abbrev: "Jer", Volume: 4, Aliases: []string{"jer", "je", "jeremia"}},
	{Number: 25, Name: "Lamentations", Testament: OldTestamentTag, Code: "LAM", Abbrev: "Lam", Volume: 4, Aliases: []string{"lam", "la"}},
	{Number: 26, Name: "Ezekiel", Testament: OldTestamentTag, Code: "EZK", Abbrev: "Ezek", Volume: 4, Aliases: []string{"ezek", "eze", "ezk"}},
	{Number: 27, Name: "Daniel", Testament: OldTestamentTag, Code: "DAN", Abbrev: "Dan", Volume: 4, Aliases: []string{"dan", "da", "dn"}},
	{Number: 28, Name: "Hosea", Testament: OldTestamentTag, Code: "HOS", Abbrev: "Hos", Volume: 4, Aliases: []string{"hos", "ho"}},
	{Number: 29, Name: "Joel", Testament: OldTestamentTag, Code: "JOL", Abbrev: "Joel", Volume: 4, Aliases: []string{"jol", "jl"}},
	{Number: 30, Name: "Amos", Testament: OldTestamentTag, Code: "AMO", Abbrev: "Amos", Volume: 4, Aliases: []string{"amo", "am"}},
	{Number: 31, Name: "Obadiah", Testament: OldTestamentTag, Code: "OBA", Abbrev: "Obad", Volume: 4, Aliases: []string{"obad", "oba", "ob"}},
	{Number: 32, Name: "Jonah", Testament: OldTestamentTag, Code: "JON", Abbrev: "Jonah", Volume: 4, Aliases: []string{"jon", "jnh"}},
	{Number: 33, Name: "Micah", Testament: OldTestamentTag, Code: "MIC", Abbrev: "Mic", Volume: 4, Aliases: []string{"mic", "mc", "mica"}},
	{Number: 34, Name: "Nahum", Testament: OldTestamentTag, Code: "NAM", Abbrev: "Nah", Volume: 4, Aliases: []string{"nah", "na"}},
	{Number: 35, Name: "Habakkuk", Testament: OldTestamentTag, Code: "HAB", Abbrev: "Hab", Volume: 4, Aliases: []string{"hab", "hb", "habakuk", "habbakuk"}},
	{Number: 36, Name: "Zephaniah", Testament: OldTestamentTag, Code: "ZEP", Abbrev: "Zeph", Volume: 4, Aliases: []string{"zeph", "zep", "zp"}},
	{Number: 37, Name: "Haggai", Testament: OldTestamentTag, Code: "HAG", Abbrev: "Hag", Volume: 4, Aliases: []string{"hag", "hg"}},
	{Number: 38, Name: "Zechariah", Testament: OldTestamentTag, Code: "ZEC", Abbrev: "Zech", Volume: 4, Aliases: []string{"zech", "zec", "zc", "zachariah"}},
	{Number: 39, Name: "Malachi", Testament: OldTestamentTag, Code: "MAL", Abbrev: "Mal", Volume: 4, Aliases: []string{"mal", "ml", "malachai"}},
	{Number: 40, Name: "Matthew", Testament: NewTestamentTag, Code: "MAT", Abbrev: "Matt", Volume: 5, Aliases: []string{"matt", "mat", "mt", "mathew"}},
	{Number: 41, Name: "Mark", Testament: NewTestamentTag, Code: "MRK", Abbrev: "Mark", Volume: 5, Aliases: []string{"mrk", "mk", "mr"}},
	{Number: 42, Name: "Luke", Testament: NewTestamentTag, Code: "LUK", Abbrev: "Luke", Volume: 5, Aliases: []string{"luk", "lk"}},
	{Number: 43, Name: "John", Testament: NewTestamentTag, Code: "JHN", Abbrev: "John", Volume: 5, Aliases: []string{"joh", "jhn", "jn"}},
	{Number: 44, Name: "Acts", Testament: NewTestamentTag, Code: "ACT", Abbrev: "Acts", Volume: 6, Aliases: []string{"act", "ac", "acts of the apostles"}},
	{Number: 45, Name: "Romans", Testament: NewTestamentTag, Code: "ROM", Abbrev: "Rom", Volume: 6, Aliases: []string{"rom", "ro", "rm"}},
	{Number: 46, Name: "1 Corinthians", Testament: NewTestamentTag, Code: "1CO", Abbrev: "1Cor", Volume: 6, Aliases: []string{"1 cor", "1cor", "1 co", "i corinthians", "first corinthians", "1 corinthains"}},
	{Number: 47, Name: "2 Corinthians", Testament: NewTestamentTag, Code: "2CO", Abbrev: "2Cor", Volume: 6, Aliases: []string{"2 cor", "2cor", "2 co", "ii corinthians", "second corinthians"}},
	{Number: 48, Name: "Galatians", Testament: NewTestamentTag, Code: "GAL", Abbrev: "Gal", Volume: 6, Aliases: []string{"gal", "ga", "galations"}},
	{Number: 49, Name: "Ephesians", Testament: NewTestamentTag, Code: "EPH", Abbrev: "Eph", Volume: 6, Aliases: []string{"eph", "ephes", "ephesian"}},
	{Number: 50, Name: "Philippians", Testament: NewTestamentTag, Code: "PHP", Abbrev: "Phil", Volume: 6, Aliases: []string{"phil", "php", "pp", "philipians", "phillipians", "phillippians"}},
	{Number: 51, Name: "Colossians", Testament: NewTestamentTag, Code: "COL", Abbrev: "Col", Volume: 6, Aliases: []string{"col", "co", "colosians", "collosians"}},
	{Number: 52, Name: "1 Thessalonians", Testament: NewTestamentTag, Code: "1TH", Abbrev: "1Thess", Volume: 6, Aliases: []string{"1 thess", "1thess", "1 th", "i thessalonians", "first thessalonians", "1 thesalonians"}},
	{Number: 53, Name: "2 Thessalonians", Testament: NewTestamentTag, Code: "2TH", Abbrev: "2Thess", Volume: 6, Aliases: []string{"2 thess", "2thess", "2 th", "ii thessalonians", "second thessalonians"}},
	{Number: 54, Name: "1 Timothy", Testament: NewTestamentTag, Code: "1TI", Abbrev: "1Tim", Volume: 6, Aliases: []string{"1 tim", "1tim", "1 ti", "i timothy", "first timothy"}},
	{Number: 55, Name: "2 Timothy", Testament: NewTestamentTag, Code: "2TI", Abbrev: "2Tim", Volume: 6, Aliases: []string{"2 tim", "2tim", "2 ti", "ii timothy", "second timothy"}},
	{Number: 56, Name: "Titus", Testament: NewTestamentTag, Code: "TIT", Abbrev: "Titus", Volume: 6, Aliases: []string{"tit", "ti"}},
	{Number: 57, Name: "Philemon", Testament: NewTestamentTag, Code: "PHM", Abbrev: "Phlm", Volume: 6, Aliases: []string{"phlm", "phm", "pm", "philemon"}},
	{Number: 58, Name: "Hebrews", Testament: NewTestamentTag, Code: "HEB", Abbrev: "Heb", Volume: 6, Aliases: []string{"heb", "hebrew"}},
	{Number: 59, Name: "James", Testament: NewTestamentTag, Code: "JAS", Abbrev: "Jas", Volume: 6, Aliases: []string{"jas", "jm", "jms"}},
	{Number: 60, Name: "1 Peter", Testament: NewTestamentTag, Code: "1PE", Abbrev: "1Pet", Volume: 6, Aliases: []string{"1 pet", "1pet", "1 pe", "i peter", "first peter"}},
	{Number: 61, Name: "2 Peter", Testament: NewTestamentTag, Code: "2PE", Abbrev: "2Pet", Volume: 6, Aliases: []string{"2 pet", "2pet", "2 pe", "ii peter", "second peter"}},
	{Number: 62, Name: "1 John", Testament: NewTestamentTag, Code: "1JN", Abbrev: "1John", Volume: 6, Aliases: []string{"1 jn", "1jn", "1 joh", "i john", "first john"}},
	{Number: 63, Name: "2 John", Testament: NewTestamentTag, Code: "2JN", Abbrev: "2John", Volume: 6, Aliases: []string{"2 jn", "2jn", "2 joh", "ii john", "second john"}},
	{Number: 64, Name: "3 John", Testament: NewTestamentTag, Code: "3JN", Abbrev: "3John", Volume: 6, Aliases: []string{"3 jn", "3jn", "3 joh", "iii john", "third john"}},
	{Number: 65, Name: "Jude", Testament: NewTestamentTag, Code: "JUD", Abbrev: "Jude", Volume: 6, Aliases: []string{"jud", "jd"}},
	{Number: 66, Name: "Revelation", Testament: NewTestamentTag, Code: "REV", Abbrev: "Rev", Volume: 6, Aliases: []string{"rev", "re", "revelations", "apocalypse", "the revelation"}},
}
