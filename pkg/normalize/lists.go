package normalize

// DefaultContractions is the built-in English contraction table. Longer
// forms come before their prefixes so that "can't've" never matches as
// "can't" + garbage.
var DefaultContractions = []Contraction{
	{"can't've", "cannot have"},
	{"couldn't've", "could not have"},
	{"shouldn't've", "should not have"},
	{"wouldn't've", "would not have"},
	{"won't've", "will not have"},
	{"ain't", "am not"},
	{"aren't", "are not"},
	{"can't", "cannot"},
	{"couldn't", "could not"},
	{"didn't", "did not"},
	{"doesn't", "does not"},
	{"don't", "do not"},
	{"hadn't", "had not"},
	{"hasn't", "has not"},
	{"haven't", "have not"},
	{"isn't", "is not"},
	{"mightn't", "might not"},
	{"mustn't", "must not"},
	{"needn't", "need not"},
	{"shan't", "shall not"},
	{"shouldn't", "should not"},
	{"wasn't", "was not"},
	{"weren't", "were not"},
	{"won't", "will not"},
	{"wouldn't", "would not"},
	{"i'm", "i am"},
	{"i've", "i have"},
	{"i'll", "i will"},
	{"i'd", "i would"},
	{"you're", "you are"},
	{"you've", "you have"},
	{"you'll", "you will"},
	{"you'd", "you would"},
	{"he's", "he is"},
	{"he'll", "he will"},
	{"he'd", "he would"},
	{"she's", "she is"},
	{"she'll", "she will"},
	{"she'd", "she would"},
	{"it's", "it is"},
	{"it'll", "it will"},
	{"it'd", "it would"},
	{"we're", "we are"},
	{"we've", "we have"},
	{"we'll", "we will"},
	{"we'd", "we would"},
	{"they're", "they are"},
	{"they've", "they have"},
	{"they'll", "they will"},
	{"they'd", "they would"},
	{"that's", "that is"},
	{"that'll", "that will"},
	{"that'd", "that would"},
	{"there's", "there is"},
	{"there'll", "there will"},
	{"here's", "here is"},
	{"who's", "who is"},
	{"who'll", "who will"},
	{"what's", "what is"},
	{"what're", "what are"},
	{"where's", "where is"},
	{"when's", "when is"},
	{"why's", "why is"},
	{"how's", "how is"},
	{"let's", "let us"},
	{"o'clock", "of the clock"},
	{"ma'am", "madam"},
	{"y'all", "you all"},
	{"could've", "could have"},
	{"should've", "should have"},
	{"would've", "would have"},
	{"might've", "might have"},
	{"must've", "must have"},
}

// DefaultProperNouns is the built-in closed set for the proper-noun
// classifier: common given names, countries and regions, languages, days,
// months and honorific abbreviations. Membership is case-insensitive.
// The list is deliberately small; growing it arbitrarily trades one class
// of misclassification for another.
var DefaultProperNouns = []string{
	// Given names.
	"james", "john", "robert", "michael", "william", "david", "richard",
	"joseph", "thomas", "charles", "daniel", "matthew", "anthony", "mark",
	"mary", "patricia", "jennifer", "linda", "elizabeth", "barbara",
	"susan", "jessica", "sarah", "karen", "nancy", "lisa", "margaret",
	"emily", "emma", "olivia", "sophia", "jack", "harry", "george",
	"oliver", "peter", "paul", "simon", "tom", "anna", "alice", "lucy",
	"kate", "jane", "henry", "sam", "ben", "amy", "grace", "lily",

	// Countries and regions.
	"america", "england", "britain", "scotland", "wales", "ireland",
	"france", "germany", "italy", "spain", "portugal", "greece", "russia",
	"china", "japan", "korea", "india", "australia", "canada", "mexico",
	"brazil", "egypt", "africa", "europe", "asia", "london", "paris",
	"beijing", "shanghai", "tokyo", "sydney", "moscow", "rome", "berlin",
	"madrid", "athens", "cairo", "dublin", "edinburgh",

	// Languages and nationalities.
	"english", "french", "german", "italian", "spanish", "portuguese",
	"greek", "russian", "chinese", "japanese", "korean", "arabic",
	"american", "british", "australian", "canadian", "indian",

	// Days.
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	"sunday",

	// Months.
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",

	// Honorifics.
	"mr", "mrs", "ms", "dr", "prof", "st", "jr", "sr",
}
