package extraction

// defaultStopWords are dropped from free-text queries before term extraction.
var defaultStopWords = toSet(
	// articles, determiners
	"a", "an", "the", "this", "that", "these", "those", "some", "any", "each", "every",
	"another", "other", "such",
	// pronouns
	"i", "me", "my", "mine", "myself", "we", "us", "our", "ours", "you", "your", "yours",
	"he", "him", "his", "she", "her", "hers", "it", "its", "they", "them", "their", "theirs",
	"who", "whom", "whose", "which", "what", "someone", "somebody", "anyone", "anybody",
	// auxiliaries
	"is", "am", "are", "was", "were", "be", "been", "being", "do", "does", "did", "have",
	"has", "had", "can", "could", "would", "should", "will", "shall", "may", "might", "must",
	// prepositions, conjunctions
	"and", "or", "but", "nor", "so", "for", "of", "to", "in", "on", "at", "by", "with",
	"from", "into", "onto", "about", "as", "if", "than", "then", "like", "up", "out", "off",
	"over", "under", "near", "without", "within", "via",
	// hedges and filler
	"really", "very", "maybe", "perhaps", "something", "anything", "thing", "things",
	"stuff", "kind", "sort", "kinda", "sorta", "just", "quite", "bit",
	"lot", "lots", "much", "more", "most", "please", "thanks", "hi", "hello", "hey", "um",
	"uh", "actually", "basically", "also", "too", "even", "still", "ever", "all",
	// request verbs
	"want", "wants", "need", "needs", "looking", "look", "find", "get", "buy", "show",
	"search", "searching", "help", "wish", "got", "give", "make",
	// gift recipients describe the buyer, not the item
	"mom", "mum", "mother", "dad", "father", "parent", "parents", "wife", "husband",
	"sister", "brother", "friend", "friends", "boyfriend", "girlfriend", "partner",
	"grandma", "grandpa", "grandmother", "grandfather", "aunt", "uncle", "son",
	"daughter", "kid", "kids", "child", "children", "coworker", "boss",
	// time words
	"today", "tomorrow", "now", "soon",
)

func toSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
