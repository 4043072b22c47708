package catalog

import "edgefinder/internal/edge"

var nbaGames = []Game{
	{ID: "nba-1", Sport: SportNBA, AwayTeam: "Lakers", HomeTeam: "Celtics", Spread: "BOS -6.5", Total: "224", MoneylineAway: "+220", MoneylineHome: "-270",
		StartTime: "7:30 PM ET", Grade: edge.GradeD, EdgeReason: "No situational advantage. Two rested teams, line is fair.",
		BullCase: "None identified. Both teams healthy, no schedule edge.", BearCase: "Line reflects talent gap accurately. Public money balanced.",
		Gut: edge.GutNeutral},
	{ID: "nba-2", Sport: SportNBA, AwayTeam: "Heat", HomeTeam: "Bucks", Spread: "MIL -4", Total: "218", MoneylineAway: "+155", MoneylineHome: "-185",
		StartTime: "8:00 PM ET", Grade: edge.GradeB, EdgeReason: "Heat on B2B, 3rd game in 5 nights. Bucks fully rested at home.",
		BullCase: "Fatigue not fully priced into -4. Heat shooting 38% on B2Bs this season. Bucks rest advantage undervalued.",
		BearCase: "Heat have covered 3 of last 5 as road dog. Butler historically performs on short rest.",
		Gut:      edge.GutSupports},
	{ID: "nba-3", Sport: SportNBA, AwayTeam: "Mavericks", HomeTeam: "Warriors", Spread: "GSW -3", Total: "228.5", MoneylineAway: "+135", MoneylineHome: "-155",
		StartTime: "10:00 PM ET", Grade: edge.GradeBPlus, EdgeReason: "Line opened GSW -5, moved to -3. Sharp money on Dallas.",
		BullCase: "Reverse line movement signals sharp action on Mavs. Luka averaging 34.2 in last 5 vs Warriors.",
		BearCase: "Warriors 12-3 at home this month. Curry shooting 48% from 3 at Chase Center.",
		Gut:      edge.GutSupports},
	{ID: "nba-4", Sport: SportNBA, AwayTeam: "Nuggets", HomeTeam: "Suns", Spread: "DEN -2.5", Total: "231", MoneylineAway: "-140", MoneylineHome: "+120",
		StartTime: "9:00 PM ET", Grade: edge.GradeC, EdgeReason: "Jokic vs Booker always delivers, but line is efficient.",
		BullCase: "Suns missing Beal (hamstring). Not yet reflected in total.", BearCase: "Nuggets on road B2B after playing in LA.",
		Gut: edge.GutNeutral},
	{ID: "nba-5", Sport: SportNBA, AwayTeam: "Pacers", HomeTeam: "Knicks", Spread: "NYK -5.5", Total: "225.5", MoneylineAway: "+190", MoneylineHome: "-230",
		StartTime: "7:00 PM ET", Grade: edge.GradeA, EdgeReason: "Pacers missing Haliburton + Turner. Knicks revenge game after playoff loss.",
		BullCase: "Two key Pacers out, line only -5.5. Market slow to adjust. Knicks 8-1 ATS at home vs injured opponents.",
		BearCase: "Pacers have covered without Haliburton before (3-1 ATS). Siakam usage spikes.",
		Gut:      edge.GutStrong},
}

var nhlGames = []Game{
	{ID: "nhl-1", Sport: SportNHL, AwayTeam: "Rangers", HomeTeam: "Bruins", Spread: "BOS -1.5", Total: "5.5", MoneylineAway: "+140", MoneylineHome: "-165",
		StartTime: "7:00 PM ET", Grade: edge.GradeB, EdgeReason: "Bruins backup goalie confirmed. Not yet reflected in line.",
		BullCase: "Backup goalie Korpisalo starts. His .891 save % not priced into -165 ML.",
		BearCase: "Bruins defense limits shots regardless of goalie. Rangers on B2B.",
		Gut:      edge.GutSupports},
	{ID: "nhl-2", Sport: SportNHL, AwayTeam: "Avalanche", HomeTeam: "Stars", Spread: "DAL -1.5", Total: "6", MoneylineAway: "+125", MoneylineHome: "-150",
		StartTime: "8:30 PM ET", Grade: edge.GradeC, EdgeReason: "MacKinnon GTD. Line hasn't moved yet.",
		BullCase: "If MacKinnon sits, Avs lose their engine. Line is stale.", BearCase: "Avs depth has covered before. Stars cold at home lately.",
		Gut: edge.GutNeutral},
	{ID: "nhl-3", Sport: SportNHL, AwayTeam: "Panthers", HomeTeam: "Lightning", Spread: "TBL -1.5", Total: "6.5", MoneylineAway: "+110", MoneylineHome: "-130",
		StartTime: "7:30 PM ET", Grade: edge.GradeBPlus, EdgeReason: "Panthers on 3-game win streak, Lightning missing Kucherov.",
		BullCase: "Kucherov out 2-3 weeks. Lightning ML still only -130. Public hasn't adjusted.",
		BearCase: "Lightning have Vasilevskiy. Home ice. Rivalry game.",
		Gut:      edge.GutSupports},
}

var nflGames = []Game{
	{ID: "nfl-1", Sport: SportNFL, AwayTeam: "Chiefs", HomeTeam: "Ravens", Spread: "BAL -2.5", Total: "47.5", MoneylineAway: "+120", MoneylineHome: "-140",
		StartTime: "4:25 PM ET", Grade: edge.GradeC, EdgeReason: "Offseason. Use for reference only.",
		BullCase: "N/A (offseason)", BearCase: "N/A", Gut: edge.GutNeutral},
}

var cfbGames = []Game{
	{ID: "cfb-1", Sport: SportCFB, AwayTeam: "Ohio State", HomeTeam: "Michigan", Spread: "MICH -3", Total: "44.5", MoneylineAway: "+130", MoneylineHome: "-155",
		StartTime: "12:00 PM ET", Grade: edge.GradeC, EdgeReason: "Offseason. Use for reference only.",
		BullCase: "N/A (offseason)", BearCase: "N/A", Gut: edge.GutNeutral},
}

var props = []Prop{
	{ID: "prop-1", Player: "Nikola Jokic", Sport: SportNBA, Team: "Nuggets", PropType: "Rebounds", Line: "O/U 11.5",
		Grade: edge.GradeA, Reasoning: "Playing Spurs (worst rebounding team). Averages 14.2 vs bottom-10 teams. 2.7 rebounds of cushion.",
		Recommendation: "OVER 11.5 -- This is the play.", Matchup: "vs Suns (29th in opp. rebounds allowed)"},
	{ID: "prop-2", Player: "Luka Doncic", Sport: SportNBA, Team: "Mavericks", PropType: "Points", Line: "O/U 30.5",
		Grade: edge.GradeBPlus, Reasoning: "Averaging 34.2 vs Warriors in last 5. Curry draws attention, Luka exploits mismatches.",
		Recommendation: "OVER 30.5 -- Matchup driven.", Matchup: "vs Warriors (25th in perimeter D)"},
	{ID: "prop-3", Player: "Jalen Brunson", Sport: SportNBA, Team: "Knicks", PropType: "Assists", Line: "O/U 6.5",
		Grade: edge.GradeB, Reasoning: "Pacers missing Haliburton. Knicks will control pace. Brunson usage up 8% without pressure.",
		Recommendation: "OVER 6.5 -- Pace control edge.", Matchup: "vs Pacers (shorthanded backcourt)"},
	{ID: "prop-4", Player: "Tyrese Haliburton", Sport: SportNBA, Team: "Pacers", PropType: "PRA", Line: "O/U 32.5",
		Grade: edge.GradeD, Reasoning: "INJURED -- DNP expected. Do not bet.", Recommendation: "NO BET -- Player injured.",
		Matchup: "N/A"},
	{ID: "prop-5", Player: "Anthony Edwards", Sport: SportNBA, Team: "Timberwolves", PropType: "3-Pointers Made", Line: "O/U 3.5",
		Grade: edge.GradeC, Reasoning: "Edwards shooting 31% from 3 this month. Volume is there but accuracy is cold.",
		Recommendation: "PASS -- Cold stretch, no edge.", Matchup: "vs Clippers (12th in 3PT D)"},
	{ID: "prop-6", Player: "Connor McDavid", Sport: SportNHL, Team: "Oilers", PropType: "Points", Line: "O/U 1.5",
		Grade: edge.GradeB, Reasoning: "Playing Sharks (worst GAA in league). McDavid has 8 points in last 3 vs SJ.",
		Recommendation: "OVER 1.5 -- Matchup gold.", Matchup: "vs Sharks (32nd in GAA)"},
}

// fixtureGames returns the slate for one sport, nil when unknown.
func fixtureGames(sport string) []Game {
	switch sport {
	case SportNBA:
		return nbaGames
	case SportNHL:
		return nhlGames
	case SportNFL:
		return nflGames
	case SportCFB:
		return cfbGames
	}
	return nil
}

// fixtureAll returns every game in catalog order: NBA, NHL, NFL, CFB.
func fixtureAll() []Game {
	all := make([]Game, 0, len(nbaGames)+len(nhlGames)+len(nflGames)+len(cfbGames))
	all = append(all, nbaGames...)
	all = append(all, nhlGames...)
	all = append(all, nflGames...)
	return append(all, cfbGames...)
}
