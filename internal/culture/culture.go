// Package culture carries the cultural and symbolic background for the
// catalogued meters: temple architecture, deity associations, and spiritual
// significance. Lookup is case-insensitive through a normalized-key map built
// once at package load.
package culture

import (
	"fmt"
	"strings"
)

type Info struct {
	Syllables    int
	Structure    string
	Symbolism    string
	Deity        string
	Meaning      string
	Significance string
}

// entry groups one Info with every accepted spelling of the meter's name.
type entry struct {
	names []string
	info  Info
}

var entries = []entry{
	{
		names: []string{"Gayatri", "Gāyatrī"},
		info: Info{
			Syllables:    24,
			Structure:    "3 pādas of 8 (8/8/8)",
			Symbolism:    "Kamakshi Temple's Gayatri Mandapam with 24 pillars representing the 24 syllables",
			Deity:        "Savitr (Solar deity)",
			Meaning:      "Light, awakening, illumination",
			Significance: "The most sacred Vedic metre, used in the famous Gayatri mantra. Each syllable represents a pillar of spiritual light.",
		},
	},
	{
		names: []string{"Anushtubh", "Anuṣṭubh", "Anushtup"},
		info: Info{
			Syllables:    32,
			Structure:    "4 pādas of 8 (8/8/8/8)",
			Symbolism:    "Ramayana's 32-syllable ślokas, 32 forms of Durga, 32 teeth in human mouth",
			Deity:        "Viṣṇu (Preserver)",
			Meaning:      "Order, balance, harmony",
			Significance: "Most common metre in classical Sanskrit literature. Represents perfect balance and divine order.",
		},
	},
	{
		names: []string{"Trishtubh", "Triṣṭubh"},
		info: Info{
			Syllables:    44,
			Structure:    "4 pādas of 11 (11/11/11/11)",
			Symbolism:    "11 Rudras in Vedic cosmology, 11-step temple ascents, 11 forms of Shiva",
			Deity:        "Indra (King of gods)",
			Meaning:      "Power, victory, sovereignty",
			Significance: "Second most common Vedic metre. Used for hymns of praise and power.",
		},
	},
	{
		names: []string{"Jagati", "Jagatī"},
		info: Info{
			Syllables:    48,
			Structure:    "4 pādas of 12 (12/12/12/12)",
			Symbolism:    "12-petal mandalas ×4 = 48, 12 Adityas (solar deities), 12 zodiac signs",
			Deity:        "Brahmā (Creator)",
			Meaning:      "Expansion, growth, universe",
			Significance: "Represents the manifest universe. The number 12 appears in cosmic cycles and temple designs.",
		},
	},
	{
		names: []string{"Ushnik", "Uṣṇih"},
		info: Info{
			Syllables:    28,
			Structure:    "3 pādas (8/8/12)",
			Symbolism:    "28-pillar circuits in temples, 28 nakṣatra (lunar mansions) paths",
			Deity:        "Soma (Moon deity)",
			Meaning:      "Healing, calm, nourishment",
			Significance: "Associated with lunar cycles and healing rituals. 28 nakshatras guide Vedic astrology.",
		},
	},
	{
		names: []string{"Brihati", "Bṛhatī"},
		info: Info{
			Syllables:    36,
			Structure:    "4 pādas of 9 (9/9/9/9)",
			Symbolism:    "36 tatvas (principles) in Shaiva philosophy, 36 rashis in three cycles",
			Deity:        "Brihaspati (Jupiter/Guru)",
			Meaning:      "Vastness, wisdom, expansion",
			Significance: "Represents comprehensive knowledge and the teacher principle.",
		},
	},
	{
		names: []string{"Pankti", "Paṅkti"},
		info: Info{
			Syllables:    40,
			Structure:    "5 pādas of 8 (8/8/8/8/8)",
			Symbolism:    "5 elements (pancha bhutas), 5 faces of Shiva, 5-fold offerings",
			Deity:        "Panchavaktra Shiva (Five-faced Shiva)",
			Meaning:      "Completeness, fullness, quintessence",
			Significance: "Represents the five elements and cosmic wholeness.",
		},
	},
	{
		names: []string{"Indravajra", "Indravajrā"},
		info: Info{
			Syllables:    44,
			Structure:    "4 pādas of 11 syllables with pattern GGLGGLLGLGG",
			Symbolism:    "11 Rudras, Indra's thunderbolt (vajra) in 11 forms",
			Deity:        "Indra (Thunder god)",
			Meaning:      "Thunderbolt, power, swiftness",
			Significance: "Classical metre for heroic and devotional poetry. Used extensively by Kalidasa.",
		},
	},
	{
		names: []string{"Upendravajra", "Upendravajrā"},
		info: Info{
			Syllables:    44,
			Structure:    "4 pādas of 11 syllables with pattern LGLGGLLGLGG",
			Symbolism:    "Upendra (Vishnu), complementary to Indravajra",
			Deity:        "Upendra/Vishnu (Preserver)",
			Meaning:      "Grace, support, continuity",
			Significance: "Often alternates with Indravajra in classical poetry for rhythmic variety.",
		},
	},
	{
		names: []string{"Vasantatilaka", "Vasantatilakā"},
		info: Info{
			Syllables:    56,
			Structure:    "4 pādas of 14 (14/14/14/14)",
			Symbolism:    "Spring (Vasanta) decoration, 14 worlds in cosmology, fortnightly lunar cycles",
			Deity:        "Kamadeva (God of love) and Vasanta (Spring)",
			Meaning:      "Beauty, ornamentation, springtime",
			Significance: "Ornate metre used for romantic and devotional poetry. Represents creative flowering.",
		},
	},
	{
		names: []string{"Malini", "Mālinī"},
		info: Info{
			Syllables:    60,
			Structure:    "4 pādas of 15 (15/15/15/15)",
			Symbolism:    "Garland (mala) of 15 flowers per strand, 15 lunar tithis",
			Deity:        "Durga/Lakshmi (Goddess with garlands)",
			Meaning:      "Garland, beauty, divine feminine",
			Significance: "Graceful metre associated with goddess worship and aesthetic refinement.",
		},
	},
	{
		names: []string{"Mandakranta", "Mandākrāntā"},
		info: Info{
			Syllables:    68,
			Structure:    "4 pādas of 17 (17/17/17/17)",
			Symbolism:    "Slow, majestic gait (manda = slow, kranta = step), temple processions",
			Deity:        "Shiva (In cosmic dance form)",
			Meaning:      "Majestic movement, grandeur, dignity",
			Significance: "Slow, graceful metre used for solemn and majestic themes. Popular in devotional literature.",
		},
	},
	{
		names: []string{"Shardulavikridita", "Shardula-vikridita", "Śārdūlavikrīḍita"},
		info: Info{
			Syllables:    76,
			Structure:    "4 pādas of 19 (19/19/19/19)",
			Symbolism:    "Tiger's sport (shardula = tiger, vikridita = play), 19 elements in Samkhya",
			Deity:        "Narasimha (Lion-man avatar)",
			Meaning:      "Power, playful ferocity, majesty",
			Significance: "Complex, powerful metre for heroic themes. Requires skilled composition.",
		},
	},
	{
		names: []string{"Sragdhara", "Sragdharā"},
		info: Info{
			Syllables:    84,
			Structure:    "4 pādas of 21 (21/21/21/21)",
			Symbolism:    "Garland bearer (srag = garland), 21 brahmanas in Yajurveda",
			Deity:        "Krishna (Wearing victory garlands)",
			Meaning:      "Victory garland, glory, supreme achievement",
			Significance: "One of the longest and most ornate metres. Used for grand, elaborate descriptions.",
		},
	},
}

// byKey is the normalized-key index: lower-cased, hyphen-free names mapped
// once at load instead of a linear case-insensitive scan per lookup.
var byKey = func() map[string]Info {
	m := make(map[string]Info)
	for _, e := range entries {
		for _, name := range e.names {
			m[normalizeKey(name)] = e.info
		}
	}
	return m
}()

func normalizeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
}

// Lookup returns the cultural record for a meter name, ignoring case and
// hyphenation.
func Lookup(name string) (Info, bool) {
	info, ok := byKey[normalizeKey(name)]
	return info, ok
}

// FormatContext renders the cultural record as readable prompt/display text,
// or "" when the meter is not catalogued.
func FormatContext(name string) string {
	info, ok := Lookup(name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf(`**%s Metre Cultural Context:**

**Structure:** %s (%d syllables total)
**Symbolism:** %s
**Associated Deity:** %s
**Spiritual Meaning:** %s
**Significance:** %s`,
		name, info.Structure, info.Syllables, info.Symbolism, info.Deity, info.Meaning, info.Significance))
}
