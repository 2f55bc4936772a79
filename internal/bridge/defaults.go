package bridge

// SectorWages holds baseline median wages by occupation sector.
var SectorWages = map[string]float64{
	"11": 105000, // management
	"13": 80000,  // business and finance
	"15": 102000, // computer and mathematical
	"17": 92000,  // architecture and engineering
	"19": 75000,  // life and physical science
	"21": 55000,  // community and social service
	"23": 90000,  // legal
	"25": 62000,  // education
	"27": 58000,  // arts and design
	"29": 85000,  // healthcare practitioners
	"31": 48000,  // healthcare support
	"33": 55000,  // protective service
	"41": 60000,  // sales
}

// DefaultRows is the curated program-to-occupation relation shipped with the
// binary. Deployments extend it through configuration.
var DefaultRows = []Row{
	// leaders: social science, public administration, legal, communication, business
	{Program: "45", Occupation: "11"},
	{Program: "44", Occupation: "11"},
	{Program: "22", Occupation: "11"},
	{Program: "09", Occupation: "11"},
	{Program: "52", Occupation: "11"},
	{Program: "52", Occupation: "13"},
	{Program: "45", Occupation: "13"},
	{Program: "27", Occupation: "13"},

	// engineers: computer science, engineering, mathematics, physical science, interdisciplinary
	{Program: "11", Occupation: "15"},
	{Program: "14", Occupation: "15"},
	{Program: "27", Occupation: "15"},
	{Program: "40", Occupation: "15"},
	{Program: "30", Occupation: "15"},
	{Program: "14", Occupation: "17"},
	{Program: "15", Occupation: "17"},
	{Program: "40", Occupation: "17"},
	{Program: "04", Occupation: "17"},

	// scientists
	{Program: "26", Occupation: "19"},
	{Program: "40", Occupation: "19"},
	{Program: "03", Occupation: "19"},

	// healers: health professions, biology, psychology
	{Program: "51", Occupation: "29"},
	{Program: "26", Occupation: "29"},
	{Program: "42", Occupation: "29"},
	{Program: "51", Occupation: "31"},

	// community service and education
	{Program: "44", Occupation: "21"},
	{Program: "42", Occupation: "21"},
	{Program: "13", Occupation: "25"},
	{Program: "42", Occupation: "25"},
	{Program: "45", Occupation: "25"},
	{Program: "23", Occupation: "25"},
	{Program: "24", Occupation: "25"},

	// creatives: visual and performing arts, English, communication, architecture, communication technology
	{Program: "50", Occupation: "27"},
	{Program: "23", Occupation: "27"},
	{Program: "09", Occupation: "27"},
	{Program: "04", Occupation: "27"},
	{Program: "10", Occupation: "27"},

	// legal
	{Program: "22", Occupation: "23"},
	{Program: "43", Occupation: "23"},
	{Program: "44", Occupation: "23"},
	{Program: "43", Occupation: "33"},
	{Program: "52", Occupation: "41"},
	{Program: "09", Occupation: "41"},
}
