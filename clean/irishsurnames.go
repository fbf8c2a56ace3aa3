package clean

// irishOSurnames is the fixed surname list the Irish-O repair matches
// against, per spec §6.
var irishOSurnames = []string{
	"beirne", "berry", "boyle", "bryant", "brian", "brien", "bryan",
	"ceallaigh", "conner", "connor", "conor", "daniel", "day", "dean", "dea",
	"doherty", "donnell", "donnel", "donoghue", "donohue", "donovan", "dowd",
	"driscoll", "fallon", "farrell", "flaherty", "flanagan", "flynn", "gara",
	"gorman", "grady", "guinn", "guin", "hagan", "haire", "hair", "halloran",
	"hanlon", "hara", "hare", "harra", "harrow", "haver", "hearn", "hern",
	"herron", "higgins", "hora", "kane", "keefe", "keeffe", "kelley", "kelly",
	"laughlin", "leary", "loughlin", "mahoney", "mahony", "maley", "malley",
	"mara", "mary", "meara", "melia", "moore", "more", "muir", "murchu",
	"mure", "murphy", "neall", "neal", "neill", "neil", "ney", "niall",
	"quinn", "regan", "reilly", "riley", "riordan", "roark", "rorke",
	"rourke", "ryan", "shaughnessy", "shea", "shields", "sullivan", "toole",
	"tool",
}

// unnecessaryPrefixes is the ordered prefix list for unnecessary-prefix
// removal, per spec §4.3.
var unnecessaryPrefixes = []string{
	"d'", "de", "fi", "santa", "san", "de la", "de los", "del", "la", "le",
	"du", "dela", "los", "der", "den", "vanden", "vander", "vande", "van",
	"von",
}
