package advisor

// SystemPrompt is sent ahead of the history on every remote call.
const SystemPrompt = `You are Edge Finder v4, Peter's betting analyst. Your job is to find edge -- situations where the market is wrong.

Core Rule: If you can't answer "Why is the market wrong?" the answer is NO BET.

Bet Grades:
A = Clear edge, high confidence (Full unit)
B = Edge exists, moderate confidence (Half unit)
C = Possible edge, low confidence (Small or pass)
D = No edge identified (NO BET)
F = Market is right (NO BET + flag trap)

Default is D. Bets earn their way up.

When user says "I like X" -- look for data that supports or contradicts. Gut + data alignment = upgrade. Data contradicts gut = flag conflict.

Output Quick Take format by default:
[BET]
Edge: Yes/No/Maybe
Grade: A-F
Why: [1 sentence]
Risk: [amount per bankroll rules]

Style: Short answers. Honest. Skeptical. "No bet" is a valid answer. Never say "lock" or "guaranteed." No excuses as analysis.

Sports focus (Feb/March 2026): NBA primary, NHL secondary. NFL/CFB offseason. NCAA banned unless user initiates.

Red flags (auto-pass): Heavy favorite (-300+), "should win" logic, consensus pick with no contrarian angle, chasing losses, volume plays.

Parlay rules: Max 3 legs for value, max 4 EVER, each leg needs own edge.

Set it and forget it. Place the bet, walk away. No live betting, no hedging, no cash-out panic.`

// Greeting seeds every new transcript.
const Greeting = "Edge Finder v4 online. What's the play today?\n\n" +
	"I can analyze any matchup, build parlays, check player props, or run your audit. " +
	"Give me a game, a gut feeling, or just ask what's worth betting tonight."

type canned struct {
	key   string
	reply string
}

// cannedReplies is checked in order; the first key contained in the
// lowercased input wins.
var cannedReplies = []canned{
	{key: "what's the play today", reply: `**TONIGHT'S EDGE PLAYS**

**STRAIGHT BETS (Heavy Hitter):**

1. **Knicks -5.5 vs Pacers** -- Grade A | $50
   Edge: Pacers missing Haliburton + Turner. Line hasn't adjusted enough.

2. **Bucks -4 vs Heat** -- Grade B | $25
   Edge: Heat on B2B, 3rd game in 5 nights. Fatigue not fully priced.

**VALUE PARLAY ($25 to win $121):**
- Bucks -4
- Mavericks ML +135
- Combined: +485

**PLAYER PROP:**
- Jokic OVER 11.5 reb -- Grade A | $25
  Edge: Playing worst rebounding team. 2.7 rebounds of cushion.

**PASS:**
- Lakers/Celtics -- no edge, line is fair
- Nuggets/Suns -- efficient line

Total suggested risk: $125
Expected edge plays: 3-4`},
	{key: "i like the bucks", reply: `**DEEP DIVE: Heat @ Bucks**

**THE LINE:** Bucks -4
**ML:** MIL -185 / MIA +155

**WHY MARKET MIGHT BE WRONG:**
- Heat on B2B, 3rd game in 5 nights
- Heat shooting 38% on B2Bs this season
- Bucks fully rested at home
- Fatigue not fully priced into -4

**WHY MARKET MIGHT BE RIGHT:**
- Heat covered 3 of last 5 as road dog
- Butler historically performs on short rest

**YOUR GUT:** You like the Bucks
**DATA:** Supports your read

**GUT + DATA: ALIGNMENT**

**VERDICT: Grade B**
Half unit. Edge is real but not overwhelming.
Risk: $25 (half unit at current bankroll)`},
	{key: "run audit", reply: `**WEEKLY AUDIT**

**RECORD:** 4-2
**NET P/L:** +$263
**ROI:** +18.4%
**EDGE ACCURACY:** 83%

**BY TYPE:**
| Type | W-L | P/L |
|------|-----|-----|
| Spreads | 2-0 | +$240 |
| Props | 1-0 | +$90 |
| Parlays | 0-1 | -$50 |
| ML | 1-1 | -$17 |

**PROCESS GRADE: A-**
Edge identification was strong. Only miss was a C-grade bet that should have been a pass.

**LESSON:** Grade C = pass. Stop betting them.

**WHAT'S WORKING:**
- Rest/fatigue edges (3-0)
- Injury-based edges (2-0)

**WHAT'S NOT:**
- Parlays (0-1, variance but monitor)`},
}

const quickTake = `**QUICK TAKE**

Analyzing: "%s"

Edge: Maybe
Grade: C
Why: Need more specific matchup data to identify edge. Give me a specific game or player and I'll dig deeper.

Try:
- "What's the play today?" for full slate analysis
- "I like the Bucks tonight" for specific game deep dive
- "Jokic rebounds?" for prop analysis
- "Run audit" for performance review

*Demo mode active. Connect Azure OpenAI for live analysis.*`
