// Package mission carries the fixed exam-campaign data rendered by the CLI:
// the daily schedule, the per-subject briefings, and the exam countdown.
package mission

import "time"

// ScheduleItem is one row of the fixed daily schedule.
type ScheduleItem struct {
	Time        string
	Activity    string
	Highlighted bool
	Fuel        string
}

// TopicMarks is the mark weight of one topic within a subject.
type TopicMarks struct {
	Topic string
	Marks int
}

// MasterNote is a condensed pre-made revision note attached to a subject.
// Formulas and Traps are optional.
type MasterNote struct {
	Title    string
	Summary  []string
	Formulas []string
	Traps    []string
}

// Subject is an externally-defined exam subject. Cards reference subjects by
// Id; the card store does not own this list.
type Subject struct {
	Id          string
	Name        string
	TotalMarks  int
	Strategy    string
	ExamDate    time.Time
	Portions    []string
	Topics      []TopicMarks
	MasterNotes []MasterNote
}

// ExamDate is the start of the first board exam, the target of the main
// mission countdown.
var ExamDate = time.Date(2026, time.March, 7, 0, 0, 0, 0, time.Local)

// Schedule is the fixed Ramadan study-day protocol.
var Schedule = []ScheduleItem{
	{Time: "04:00", Activity: "Suhoor", Fuel: "Oats, Eggs, Banana, Water (no sugar)"},
	{Time: "04:30", Activity: "Fajr Prayer"},
	{Time: "05:00", Activity: "PEAK 1: Deep Work (Maths - Golden Hour)", Highlighted: true},
	{Time: "07:00", Activity: "School (Conservation Mode)"},
	{Time: "15:30", Activity: "The Nap (45 min Qailulah)"},
	{Time: "16:30", Activity: "Low Energy Study (Science/SST Diagrams)"},
	{Time: "18:00", Activity: "Spiritual Hour (Quran/Dua)"},
	{Time: "19:00", Activity: "Iftar", Fuel: "Dates, Water, Light Meal"},
	{Time: "19:30", Activity: "PEAK 2: The Sprint (Kannada/English)", Highlighted: true},
	{Time: "21:00", Activity: "Isha/Tarawih (Mind Reset)"},
	{Time: "22:30", Activity: "Sleep (hard stop, phone outside)"},
}

// Subjects lists the exam subjects in campaign order.
var Subjects = []Subject{
	{
		Id: "kannada", Name: "Kannada", TotalMarks: 80, Strategy: "The Boss Fight",
		ExamDate: time.Date(2026, time.March, 7, 9, 0, 0, 0, time.Local),
		Portions: []string{"Unseen Passage (Apahita Gadyabhaga)", "Poetry (Vachanaamruta)", "Prose Chapters", "Grammar (Vyakarna)", "Letter Writing (Patra Lekhana)"},
		Topics: []TopicMarks{
			{Topic: "Prose/Poetry", Marks: 40},
			{Topic: "Grammar", Marks: 20},
			{Topic: "Letter Writing", Marks: 10},
		},
		MasterNotes: []MasterNote{
			{
				Title:   "Vachanaamruta Protocol",
				Summary: []string{"Read unseen passage questions FIRST.", "Find matching keywords in text.", "Memorize one generic summary for all Vachana questions."},
			},
		},
	},
	{
		Id: "english", Name: "English", TotalMarks: 80, Strategy: "Architecture",
		ExamDate: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local),
		Portions: []string{"Literature: Noor Inayat Khan", "Poem: All The World's a Stage", "Supplementary: King Solomon's Mines", "Notice Writing", "Formal Letter Writing", "Grammar: Tenses & Voice"},
		Topics: []TopicMarks{
			{Topic: "Literature", Marks: 40},
			{Topic: "Writing", Marks: 10},
			{Topic: "Grammar", Marks: 30},
		},
		MasterNotes: []MasterNote{
			{
				Title:   "Noor Inayat Khan Intel",
				Summary: []string{"Spy/Code name: Madeleine", "Pacifist descendant of Tipu Sultan", "Keywords: Grit, Gallantry, Sacrifice, Gestapo."},
			},
			{
				Title:   "The 7 Stages of Man",
				Summary: []string{"Infant: Mewling/Puking", "Schoolboy: Snail-like", "Lover: Sighing like furnace", "Soldier: Bearded like pard", "Justice: Wise saws", "Pantaloon: Shrunk shank", "Second Childishness: Sans everything."},
			},
		},
	},
	{
		Id: "science", Name: "Science", TotalMarks: 80, Strategy: "Visual Warfare",
		ExamDate: time.Date(2026, time.March, 12, 9, 0, 0, 0, time.Local),
		Portions: []string{"Physics: Human Eye & Light", "Physics: Sound", "Chemistry: Combustion & Flame", "Chemistry: Chemical Effects of Electric Current", "Biology: Reaching Age of Adolescence", "Biology: Microorganisms"},
		Topics: []TopicMarks{
			{Topic: "Physics", Marks: 33},
			{Topic: "Chemistry", Marks: 27},
			{Topic: "Biology", Marks: 20},
		},
		MasterNotes: []MasterNote{
			{
				Title:   "Human Eye Blueprint",
				Summary: []string{"Label: Cornea, Iris, Pupil, Lens, Retina, Optic Nerve.", "CRITICAL: Image is INVERTED on Retina."},
			},
			{
				Title:   "Candle Flame Zones",
				Summary: []string{"Outer: Blue (Hottest/Complete)", "Middle: Yellow (Moderate/Partial)", "Inner: Black (Least Hot/Unburnt)"},
			},
		},
	},
	{
		Id: "sst", Name: "SST", TotalMarks: 80, Strategy: "Memory Dump",
		ExamDate: time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local),
		Portions: []string{"History: The Revolt of 1857", "History: Indian National Movement (1905-1947)", "Geography: Agriculture & Crops", "Geography: Industries & Resources", "Civics: The Judiciary", "Civics: Public Facilities"},
		Topics: []TopicMarks{
			{Topic: "History", Marks: 33},
			{Topic: "Geography", Marks: 20},
			{Topic: "Civics", Marks: 27},
		},
		MasterNotes: []MasterNote{
			{
				Title:   "Freedom Struggle Timeline",
				Summary: []string{"1857: Revolt", "1919: Jallianwala Bagh", "1930: Dandi March", "1942: Quit India"},
			},
		},
	},
	{
		Id: "hindi", Name: "Hindi", TotalMarks: 40, Strategy: "Speed Run",
		ExamDate: time.Date(2026, time.March, 16, 9, 0, 0, 0, time.Local),
		Portions: []string{"Grammar: Kaal (Tenses)", "Letter Writing (Patra)", "Unseen Passage", "Textbook Prose/Poetry Summaries"},
		Topics: []TopicMarks{
			{Topic: "Grammar", Marks: 15},
			{Topic: "Literature", Marks: 20},
			{Topic: "Writing", Marks: 5},
		},
		MasterNotes: []MasterNote{
			{
				Title:   "Grammar Dominance",
				Summary: []string{"Vartaman (Hai)", "Bhoot (Tha)", "Bhavishya (Ga)"},
			},
		},
	},
	{
		Id: "maths", Name: "Maths", TotalMarks: 80, Strategy: "LETHAL",
		ExamDate: time.Date(2026, time.March, 18, 9, 0, 0, 0, time.Local),
		Portions: []string{"Mensuration (Area & Volume)", "Factorisation", "Introduction to Graphs", "Data Handling", "Exponents & Powers", "Direct & Inverse Proportions"},
		Topics: []TopicMarks{
			{Topic: "Mensuration 3D", Marks: 14},
			{Topic: "Factorisation", Marks: 13},
			{Topic: "Graphs", Marks: 21},
			{Topic: "Exponents", Marks: 12},
			{Topic: "Direct/Inverse", Marks: 20},
		},
		MasterNotes: []MasterNote{
			{
				Title:    "Mensuration 3D Armory",
				Summary:  []string{"Cuboid V=lbh", "Cylinder V=πr²h", "1 m³ = 1000 Liters"},
				Formulas: []string{"TSA = 2(lb+bh+hl)", "CSA Cylinder = 2πrh"},
				Traps:    []string{"Scenario: Road roller uses CSA only.", "Embankment: Soil Dug = Hollow Cylinder Volume."},
			},
		},
	},
}

// SubjectById looks a subject up by its identifier.
func SubjectById(id string) (Subject, bool) {
	for _, s := range Subjects {
		if s.Id == id {
			return s, true
		}
	}
	return Subject{}, false
}

// Countdown is the remaining time until a deadline, broken into display
// units. All fields are zero once the deadline has passed.
type Countdown struct {
	Days  int
	Hours int
	Mins  int
	Secs  int
}

// Until computes the countdown from now to the deadline.
func Until(deadline, now time.Time) Countdown {
	diff := deadline.Sub(now)
	if diff <= 0 {
		return Countdown{}
	}
	secs := int(diff / time.Second)
	return Countdown{
		Days:  secs / 86400,
		Hours: secs / 3600 % 24,
		Mins:  secs / 60 % 60,
		Secs:  secs % 60,
	}
}
