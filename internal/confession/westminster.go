package confession

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// The 1967 Book of Confessions prints the Westminster Confession with
// paragraph numbers like [6.001] and side-by-side denominational variants
// marked [PCUS ...] and [UPCUSA ...]. The importer strips the former and
// collapses the latter to a single reading.

var chapterHeader = regexp.MustCompile(`^CHAPTER [IVX]+ \(PCUS\)`)

var (
	paragraphNumber = regexp.MustCompile(`\[\d+\.\d+\]`)
	pcusThenUpcusa  = regexp.MustCompile(`\[PCUS [^\]]+\] \[UPCUSA ([^\]]+)\]`)
	upcusaThenPcus  = regexp.MustCompile(`\[UPCUSA ([^\]]+)\] \[PCUS [^\]]+\]`)
	pcusOnly        = regexp.MustCompile(`\[PCUS ([^\]]+)\]`)
	upcusaOnly      = regexp.MustCompile(`\[UPCUSA ([^\]]+)\]`)
	extraSpace      = regexp.MustCompile(`\s+`)
)

// Canon book lists appear between the chapter 1 paragraphs and would
// otherwise be swept into the content.
var (
	numberedBookLine = regexp.MustCompile(`^[IVX]+ (Samuel|Kings|Chronicles|Corinthians|Thessalonians|Timothy|Peter|John)`)
	bookNameLine     = regexp.MustCompile(`^(Genesis|Exodus|Leviticus|Numbers|Deuteronomy|Joshua|Judges|Ruth|Samuel|Kings|Chronicles|Ezra|Nehemiah|Esther|Job|Psalms|Proverbs|Ecclesiastes|Isaiah|Jeremiah|Lamentations|Ezekiel|Daniel|Hosea|Joel|Amos|Obadiah|Jonah|Micah|Nahum|Habakkuk|Zephaniah|Haggai|Zechariah|Malachi|Matthew|Mark|Luke|John|Acts|Romans|Corinthians|Galatians|Ephesians|Philippians|Colossians|Thessalonians|Timothy|Titus|Philemon|Hebrews|James|Peter|Jude|Revelation)`)
)

// chapterTopics maps a keyword found in a chapter title to the topics
// that chapter is tagged with. Ordered so imports are deterministic.
var chapterTopics = []struct {
	keyword string
	topics  []string
}{
	{"holy scripture", []string{"scripture", "revelation", "authority", "word of god"}},
	{"god", []string{"god", "trinity", "attributes"}},
	{"eternal decree", []string{"predestination", "election", "sovereignty", "decrees"}},
	{"creation", []string{"creation", "providence"}},
	{"providence", []string{"providence", "sovereignty"}},
	{"fall", []string{"sin", "fall", "adam", "original sin"}},
	{"covenant", []string{"covenant", "grace", "works"}},
	{"christ", []string{"christ", "mediator", "jesus", "incarnation", "atonement"}},
	{"free will", []string{"free will", "depravity"}},
	{"calling", []string{"calling", "regeneration", "holy spirit"}},
	{"justification", []string{"justification", "faith", "salvation"}},
	{"adoption", []string{"adoption", "sonship"}},
	{"sanctification", []string{"sanctification", "holiness"}},
	{"faith", []string{"faith", "belief"}},
	{"repentance", []string{"repentance"}},
	{"good works", []string{"good works", "obedience"}},
	{"perseverance", []string{"perseverance", "assurance"}},
	{"assurance", []string{"assurance", "salvation"}},
	{"law", []string{"law", "ten commandments", "moral law"}},
	{"liberty", []string{"liberty", "conscience", "freedom"}},
	{"worship", []string{"worship", "sabbath"}},
	{"oath", []string{"oaths", "vows"}},
	{"magistrate", []string{"civil government", "authority"}},
	{"marriage", []string{"marriage", "divorce"}},
	{"church", []string{"church", "ecclesiology"}},
	{"communion", []string{"communion of saints", "fellowship"}},
	{"sacrament", []string{"sacraments", "ordinances"}},
	{"baptism", []string{"baptism"}},
	{"lord's supper", []string{"lord's supper", "eucharist", "communion"}},
	{"censure", []string{"church discipline", "excommunication"}},
	{"synod", []string{"synods", "councils", "church government"}},
	{"death", []string{"death", "resurrection", "intermediate state"}},
	{"judgment", []string{"last judgment", "final judgment", "eschatology"}},
}

func topicsForTitle(title string) []string {
	lower := strings.ToLower(title)
	var topics []string
	for _, ct := range chapterTopics {
		if strings.Contains(lower, ct.keyword) {
			topics = append(topics, ct.topics...)
		}
	}
	if len(topics) == 0 {
		return []string{"theology"}
	}
	return topics
}

func cleanTitle(title string) string {
	title = pcusThenUpcusa.ReplaceAllString(title, "$1")
	title = upcusaThenPcus.ReplaceAllString(title, "$1")
	title = pcusOnly.ReplaceAllString(title, "$1")
	title = upcusaOnly.ReplaceAllString(title, "$1")
	return strings.TrimSpace(title)
}

func cleanContent(lines []string, title string) string {
	text := strings.Join(lines, " ")
	text = paragraphNumber.ReplaceAllString(text, "")
	text = pcusThenUpcusa.ReplaceAllString(text, "$1")
	text = upcusaThenPcus.ReplaceAllString(text, "$1")
	text = pcusOnly.ReplaceAllString(text, "$1")
	text = upcusaOnly.ReplaceAllString(text, "$1")
	if title != "" {
		if clean := cleanTitle(title); strings.HasPrefix(text, clean) {
			text = strings.TrimSpace(text[len(clean):])
		}
	}
	return strings.TrimSpace(extraSpace.ReplaceAllString(text, " "))
}

func skipLine(line, currentTitle string) bool {
	switch {
	case line == "",
		strings.HasPrefix(line, "Presbyterian Church"),
		strings.HasPrefix(line, "in the United States"),
		strings.HasPrefix(line, "The United Presbyterian"),
		strings.HasPrefix(line, "CHAPTER"),
		strings.HasPrefix(line, "Of the Old Testament"),
		strings.HasPrefix(line, "Of the New Testament"):
		return true
	}
	return strings.HasPrefix(line, "Of ") && line == currentTitle
}

// ParseWestminsterText parses the plain-text Westminster Confession into
// a structured document.
func ParseWestminsterText(r io.Reader) (*Document, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	var sections []Section
	chapterNum := 0
	currentTitle := ""
	var content []string

	flush := func() {
		if chapterNum == 0 || currentTitle == "" {
			return
		}
		text := cleanContent(content, currentTitle)
		if text == "" {
			return
		}
		sections = append(sections, Section{
			Chapter: strconv.Itoa(chapterNum),
			Title:   cleanTitle(currentTitle),
			Content: text,
			Topics:  topicsForTitle(currentTitle),
		})
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if chapterHeader.MatchString(line) {
			flush()
			chapterNum++
			content = nil
			currentTitle = ""

			// The title starts with "Of " on a following line and may
			// wrap onto the next.
			var parts []string
			for j := i + 1; j < len(lines) && j <= i+9; j++ {
				next := lines[j]
				if strings.HasPrefix(next, "Of ") {
					parts = append(parts, next)
				} else if len(parts) > 0 && next != "" && !strings.HasPrefix(next, "[") {
					parts = append(parts, next)
				} else if len(parts) > 0 {
					break
				}
			}
			currentTitle = strings.Join(parts, " ")
			continue
		}

		if skipLine(line, currentTitle) {
			continue
		}
		if chapterNum > 0 && !numberedBookLine.MatchString(line) && !bookNameLine.MatchString(line) {
			content = append(content, line)
		}
	}
	flush()

	seen := map[string]bool{}
	var allTopics []string
	for _, s := range sections {
		for _, t := range s.Topics {
			if !seen[t] {
				seen[t] = true
				allTopics = append(allTopics, t)
			}
		}
	}
	sort.Strings(allTopics)

	return &Document{
		Title:    "Westminster Confession of Faith",
		Type:     "confession",
		Date:     "1647",
		Topics:   allTopics,
		Sections: sections,
	}, nil
}
