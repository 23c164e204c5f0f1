package core

// DefaultNotes is the fixed catalog of valid tasting-note terms. The
// enrichment mapper may only return notes drawn from this list.
var DefaultNotes = []string{
	// Stone fruits
	"peach", "apricot", "nectarine", "plum", "cherry", "black cherry",
	"stone fruit", "prune", "persimmon",
	// Citrus
	"citrus", "orange", "blood orange", "tangerine", "mandarin", "lemon",
	"lime", "grapefruit", "bergamot", "yuzu",
	// Berry
	"berry", "berries", "red berries", "dark berries", "blueberry",
	"raspberry", "strawberry", "blackberry", "blackcurrant", "redcurrant",
	"cranberry", "gooseberry",
	// Tropical
	"tropical", "mango", "pineapple", "papaya", "passion fruit", "guava",
	"lychee", "coconut", "banana", "kiwi",
	// Dried fruits
	"raisin", "date", "fig", "dried fruits", "fruitcake", "tamarind",
	// Orchard
	"apple", "green apple", "pear", "grape", "melon", "watermelon",
	"pomegranate",
	// Floral
	"floral", "jasmine", "rose", "lavender", "violet", "hibiscus",
	"honeysuckle", "geranium", "chamomile",
	// Sweet
	"honey", "caramel", "toffee", "fudge", "maple", "brown sugar",
	"molasses", "panela", "candy",
	// Chocolate
	"chocolate", "dark chocolate", "milk chocolate", "cocoa", "cacao",
	// Nutty
	"nutty", "almond", "hazelnut", "walnut", "pistachio", "macadamia",
	"pecan", "marzipan", "praline",
	// Spice
	"cinnamon", "cardamom", "ginger", "baking spice",
	// Tea
	"tea", "black tea", "green tea", "oolong", "darjeeling",
	// Wine
	"wine", "red wine", "brandy", "rum", "jammy",
	// Herbal
	"herbal", "lemongrass", "verbena", "eucalyptus", "tobacco",
	// Baked
	"brioche", "biscuit", "grains", "malt",
	// Creamy
	"cream", "custard", "vanilla", "butter",
	// Other
	"fresh", "crisp", "bright", "juicy", "complex",
	// Fermented/funky
	"fermented", "wild", "yeasty", "boozy", "winey",
}

// DefaultProcesses is the fixed catalog of coffee processes.
var DefaultProcesses = []string{
	"washed", "natural", "honey", "anaerobic", "carbonic maceration",
	"double fermentation", "extended fermentation", "thermal shock",
	"wet hulled", "semi-washed", "pulped natural",
}

// DefaultVocabulary is the seed list of barista search terms the ingestion
// pipeline embeds and enriches by default.
var DefaultVocabulary = []string{
	// Flavor profiles
	"funky", "fruity", "floral", "jammy", "winey", "boozy", "bright",
	"crisp", "clean", "tea-like", "complex", "syrupy", "juicy", "sweet",
	"chocolatey", "nutty", "caramelly",
	// Compound terms
	"berry bomb", "fruit bomb", "fruit forward", "clean cup",
	"wild ferment", "heavy body", "light body", "silky mouthfeel",
	// Process-related
	"natural sweetness", "washed clarity", "honey process",
	"anaerobic funk", "carbonic",
	// Origin vibes
	"ethiopian character", "kenyan acidity", "colombian balance",
	"gesha-like",
	// Roast profiles
	"light roast", "medium roast", "filter roast", "espresso roast",
	"omni roast",
	// Experience descriptors
	"easy drinking", "crowd pleaser", "interesting", "unique", "classic",
	"experimental",
}
