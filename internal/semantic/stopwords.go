package semantic

import "strings"

// DefaultStopwords is the English function-word list used by the
// stopword-aware extractors
var DefaultStopwords = []string{
	"a", "as", "able", "about", "above", "according", "accordingly", "across", "actually", "after",
	"afterwards", "again", "against", "aint", "all", "allow", "allows", "almost", "alone", "along",
	"already", "also", "although", "always", "am", "among", "amongst", "an", "and", "another",
	"any", "anybody", "anyhow", "anyone", "anything", "anyway", "anyways", "anywhere", "apart", "appear",
	"appreciate", "appropriate", "are", "arent", "around", "aside", "ask", "asking", "associated", "at",
	"available", "away", "awfully", "be", "became", "because", "become", "becomes", "becoming", "been",
	"before", "beforehand", "behind", "being", "believe", "below", "beside", "besides", "best", "better",
	"between", "beyond", "both", "brief", "but", "by", "cmon", "cs", "came", "can",
	"cant", "cannot", "cause", "causes", "certain", "certainly", "changes", "clearly", "co", "com",
	"come", "comes", "concerning", "consequently", "consider", "considering", "contain", "containing", "contains", "corresponding",
	"could", "couldnt", "course", "currently", "definitely", "described", "despite", "did", "didnt", "different",
	"do", "does", "doesnt", "doing", "dont", "done", "down", "downwards", "during", "each",
	"edu", "eg", "eight", "either", "else", "elsewhere", "enough", "entirely", "especially", "et",
	"etc", "even", "ever", "every", "everybody", "everyone", "everything", "everywhere", "ex", "exactly",
	"example", "except", "far", "few", "ff", "fifth", "first", "five", "followed", "following",
	"follows", "for", "former", "formerly", "forth", "four", "from", "further", "furthermore", "get",
	"gets", "getting", "given", "gives", "go", "goes", "going", "gone", "got", "gotten",
	"greetings", "had", "hadnt", "happens", "hardly", "has", "hasnt", "have", "havent", "having",
	"he", "hes", "hello", "help", "hence", "her", "here", "heres", "hereafter", "hereby",
	"herein", "hereupon", "hers", "herself", "hi", "him", "himself", "his", "hither", "hopefully",
	"how", "howbeit", "however", "i", "id", "ill", "im", "ive", "ie", "if",
	"ignored", "immediate", "in", "inasmuch", "inc", "indeed", "indicate", "indicated", "indicates", "inner",
	"insofar", "instead", "into", "inward", "is", "isnt", "it", "itd", "itll", "its",
	"itself", "just", "keep", "keeps", "kept", "know", "knows", "known", "last", "lately",
	"later", "latter", "latterly", "least", "less", "lest", "let", "lets", "like", "liked",
	"likely", "little", "look", "looking", "looks", "ltd", "mainly", "many", "may", "maybe",
	"me", "mean", "meanwhile", "merely", "might", "more", "moreover", "most", "mostly", "much",
	"must", "my", "myself", "name", "namely", "nd", "near", "nearly", "necessary", "need",
	"needs", "neither", "never", "nevertheless", "new", "next", "nine", "no", "nobody", "non",
	"none", "noone", "nor", "normally", "not", "nothing", "novel", "now", "nowhere", "obviously",
	"of", "off", "often", "oh", "ok", "okay", "old", "on", "once", "one",
	"ones", "only", "onto", "or", "other", "others", "otherwise", "ought", "our", "ours",
	"ourselves", "out", "outside", "over", "overall", "own", "particular", "particularly", "per", "perhaps",
	"placed", "please", "plus", "possible", "presumably", "probably", "provides", "que", "quite", "qv",
	"rather", "rd", "re", "really", "reasonably", "regarding", "regardless", "regards", "relatively", "respectively",
	"right", "said", "same", "saw", "say", "saying", "says", "second", "secondly", "see",
	"seeing", "seem", "seemed", "seeming", "seems", "seen", "self", "selves", "sensible", "sent",
	"serious", "seriously", "seven", "several", "shall", "she", "should", "shouldnt", "since", "six",
	"so", "some", "somebody", "somehow", "someone", "something", "sometime", "sometimes", "somewhat", "somewhere",
	"soon", "sorry", "specified", "specify", "specifying", "still", "sub", "such", "sup", "sure",
	"ts", "take", "taken", "tell", "tends", "th", "than", "thank", "thanks", "thanx",
	"that", "thats", "the", "their", "theirs", "them", "themselves", "then", "thence", "there",
	"theres", "thereafter", "thereby", "therefore", "therein", "thereupon", "these", "they", "theyd", "theyll",
	"theyre", "theyve", "think", "third", "this", "thorough", "thoroughly", "those", "though", "three",
	"through", "throughout", "thru", "thus", "to", "together", "too", "took", "toward", "towards",
	"tried", "tries", "truly", "try", "trying", "twice", "two", "un", "under", "unfortunately",
	"unless", "unlikely", "until", "unto", "up", "upon", "us", "use", "used", "useful",
	"uses", "using", "usually", "value", "various", "very", "via", "viz", "vs", "want",
	"wants", "was", "wasnt", "way", "we", "wed", "well", "were", "weve", "welcome",
	"went", "werent", "what", "whats", "whatever", "when", "whence", "whenever", "where", "wheres",
	"whereafter", "whereas", "whereby", "wherein", "whereupon", "wherever", "whether", "which", "while", "whither",
	"who", "whos", "whoever", "whole", "whom", "whose", "why", "will", "willing", "wish",
	"with", "within", "without", "wont", "wonder", "would", "wouldnt", "yes", "yet", "you",
	"youd", "youll", "youre", "youve", "your", "yours", "yourself", "yourselves", "zero",
}

// StopwordCache holds the stopword list stemmed once per stemmer.
// Sets are built lazily on first use and keyed by Stemmer.Name.
type StopwordCache struct {
	words []string
	sets  map[string]map[string]struct{}
}

// NewStopwordCache creates a cache over words; nil means DefaultStopwords
func NewStopwordCache(words []string) *StopwordCache {
	if words == nil {
		words = DefaultStopwords
	}
	return &StopwordCache{
		words: words,
		sets:  make(map[string]map[string]struct{}),
	}
}

// Words returns the unstemmed stopword list
func (c *StopwordCache) Words() []string {
	return c.words
}

// Stemmed returns the stemmed stopword set for stemmer.
// Stopwords are stemmed with the unwrapped stemmer so that recording wrappers
// never see them.
func (c *StopwordCache) Stemmed(stemmer Stemmer) map[string]struct{} {
	name := stemmer.Name()
	if set, ok := c.sets[name]; ok {
		return set
	}

	base := Unwrap(stemmer)
	set := make(map[string]struct{}, len(c.words))
	for _, word := range c.words {
		if stem, ok := base.Stem(strings.ToLower(word)); ok {
			set[stem] = struct{}{}
		}
	}
	c.sets[name] = set
	return set
}

// IsStemmedStopword reports whether an already stemmed word is a stopword.
// Empty words and words starting with a digit count as stopwords.
func (c *StopwordCache) IsStemmedStopword(stemmer Stemmer, stem string) bool {
	if stem == "" {
		return true
	}
	if stem[0] >= '0' && stem[0] <= '9' {
		return true
	}
	_, ok := c.Stemmed(stemmer)[stem]
	return ok
}

// Reset drops every stemmed set
func (c *StopwordCache) Reset() {
	c.sets = make(map[string]map[string]struct{})
}
