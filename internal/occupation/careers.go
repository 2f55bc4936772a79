package occupation

import "strings"

// Career is an occupation with verified 2023 wage and growth figures.
type Career struct {
	Code   string  `json:"soc"`
	Title  string  `json:"title"`
	Wage   float64 `json:"wage"`
	Growth float64 `json:"growth"`
}

// Class groups careers of one temperament.
type Class struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Codes       []string `json:"soc_codes"`
}

// May 2023 national estimates.
var verified = map[string]Career{
	"15-1252": {Title: "Software Developer", Wage: 132270, Growth: 25.0},
	"17-2051": {Title: "Civil Engineer", Wage: 95890, Growth: 5.0},
	"17-2141": {Title: "Mechanical Engineer", Wage: 100820, Growth: 10.0},
	"17-2071": {Title: "Electrical Engineer", Wage: 106950, Growth: 5.0},
	"17-2011": {Title: "Aerospace Engineer", Wage: 130720, Growth: 6.0},
	"15-1251": {Title: "Computer Programmer", Wage: 99700, Growth: -11.0},
	"15-2031": {Title: "Operations Analyst", Wage: 82360, Growth: 23.0},
	"19-2031": {Title: "Chemist", Wage: 95570, Growth: 6.0},
	"19-1029": {Title: "Biologist", Wage: 98770, Growth: 5.0},
	"17-2199": {Title: "Robotics Engineer", Wage: 115560, Growth: 12.0},

	"29-1248": {Title: "Surgeon", Wage: 343990, Growth: 3.0},
	"29-1141": {Title: "Registered Nurse", Wage: 86070, Growth: 6.0},
	"29-1021": {Title: "Dentist", Wage: 191760, Growth: 4.0},
	"29-1171": {Title: "Nurse Practitioner", Wage: 126260, Growth: 45.0},
	"29-1051": {Title: "Pharmacist", Wage: 136030, Growth: 3.0},
	"29-1123": {Title: "Physical Therapist", Wage: 99710, Growth: 15.0},
	"29-1071": {Title: "Physician Assistant", Wage: 130020, Growth: 27.0},
	"31-1131": {Title: "Nursing Assistant", Wage: 38130, Growth: 4.0},
	"29-2061": {Title: "LPN / LVN", Wage: 59730, Growth: 5.0},
	"19-1042": {Title: "Medical Scientist", Wage: 100890, Growth: 10.0},

	"11-1011": {Title: "Chief Executive", Wage: 258900, Growth: -8.0},
	"11-2021": {Title: "Marketing Manager", Wage: 157620, Growth: 6.0},
	"11-3031": {Title: "Financial Manager", Wage: 156100, Growth: 16.0},
	"11-1021": {Title: "General Manager", Wage: 106470, Growth: 4.0},
	"11-2022": {Title: "Sales Manager", Wage: 135790, Growth: 4.0},
	"11-3121": {Title: "HR Manager", Wage: 136350, Growth: 5.0},
	"13-1111": {Title: "Management Analyst", Wage: 99410, Growth: 10.0},
	"13-2011": {Title: "Accountant", Wage: 79880, Growth: 4.0},
	"11-9033": {Title: "Education Admin", Wage: 103460, Growth: 3.0},
	"23-1011": {Title: "Lawyer", Wage: 145760, Growth: 8.0},

	"27-1011": {Title: "Art Director", Wage: 110590, Growth: 6.0},
	"27-1024": {Title: "Graphic Designer", Wage: 64500, Growth: 3.0},
	"27-3041": {Title: "Editor", Wage: 76400, Growth: -4.0},
	"27-1014": {Title: "Animator / VFX", Wage: 99130, Growth: 8.0},
	"27-2012": {Title: "Producer / Director", Wage: 105630, Growth: 7.0},
	"27-3031": {Title: "Public Relations", Wage: 73250, Growth: 6.0},
	"27-4011": {Title: "Audio Engineer", Wage: 65160, Growth: 5.0},
	"27-2041": {Title: "Music Director", Wage: 66140, Growth: 2.0},
	"27-1021": {Title: "Commercial Designer", Wage: 77640, Growth: 4.0},
	"25-1121": {Title: "Art Professor", Wage: 88350, Growth: 3.0},
}

var classes = []Class{
	{
		ID:          "engineer",
		Name:        "Engineer",
		Description: "Builders of the digital and physical world.",
		Codes:       []string{"15-1252", "17-2051", "17-2141", "17-2071", "17-2011", "15-1251", "15-2031", "19-2031", "19-1029", "17-2199"},
	},
	{
		ID:          "healer",
		Name:        "Healer",
		Description: "Guardians of health and vitality.",
		Codes:       []string{"29-1248", "29-1141", "29-1021", "29-1171", "29-1051", "29-1123", "29-1071", "31-1131", "29-2061", "19-1042"},
	},
	{
		ID:          "leader",
		Name:        "Leader",
		Description: "Commanders of organizations and capital.",
		Codes:       []string{"11-1011", "11-2021", "11-3031", "11-1021", "11-2022", "11-3121", "13-1111", "13-2011", "11-9033", "23-1011"},
	},
	{
		ID:          "creative",
		Name:        "Creative",
		Description: "Keepers of culture and imagination.",
		Codes:       []string{"27-1011", "27-1024", "27-3041", "27-1014", "27-2012", "27-3031", "27-4011", "27-2041", "27-1021", "25-1121"},
	},
}

// Classes returns the career classes in display order.
func Classes() []Class {
	out := make([]Class, len(classes))
	copy(out, classes)
	return out
}

// Careers returns the careers of a class, nil for an unknown class.
func Careers(classID string) []Career {
	classID = strings.ToLower(strings.TrimSpace(classID))
	for _, class := range classes {
		if class.ID != classID {
			continue
		}
		careers := make([]Career, 0, len(class.Codes))
		for _, code := range class.Codes {
			if career, ok := Verified(code); ok {
				careers = append(careers, career)
			}
		}
		return careers
	}
	return nil
}

// Verified returns the verified figures of an occupation code.
func Verified(code string) (Career, bool) {
	career, ok := verified[code]
	if !ok {
		return Career{}, false
	}
	career.Code = code
	return career, true
}
