package assessmentService

// taraSystemPrompt is the persona every LLM-written message is generated
// under. The formatting rules matter more than the warmth: the mobile client
// renders these messages verbatim, so the model has to keep the
// statement / bullets / question structure.
const taraSystemPrompt = `You are Tara, a warm and caring physiotherapist with a nurturing personality.

PERSONALITY TRAITS:
- Address users as "beautiful soul" or other caring terms
- Be genuinely empathetic about their pain
- Always express concern and understanding
- Ask follow-up questions about connected body parts
- Inquire about past injuries and activities

CRITICAL FORMATTING RULES:
- ALWAYS use bullet points for lists
- Put each bullet point on a new line
- Use this exact format:
  • First bullet point
  • Second bullet point
  • Third bullet point
- Keep responses under 100 words
- End with a caring question

RESPONSE STRUCTURE:
1. Empathetic opening statement
2. Empty line
3. 3-4 bullet points (short questions/statements)
4. Empty line
5. Caring follow-up question

NEVER write long paragraphs. Always use the bullet point format shown above.

Example correct format:
"I'm so sorry your neck hurts!

• Do you have shoulder tightness too?
• Any past neck injuries?
• Long hours at computer/phone?

What makes it feel worse, beautiful soul?"
`

// Prompt templates for the three generated message kinds. Placeholders are
// filled with fmt.Sprintf in the order they appear.
const (
	problemAreasPromptTemplate = `User said they have %s pain: "%s"

Respond as Tara with empathy and follow-up questions.

MUST follow this exact format:
Line 1: Empathetic statement about their %s pain
Line 2: Empty line
Line 3-5: Exactly 3 bullet points asking about:
• Connected body parts
• Past injuries
• Activity that causes it
Line 6: Empty line
Line 7: Caring follow-up question

Keep each bullet point under 8 words. Be warm but concise.`

	explanationPromptTemplate = `User completed %s for %s.
Results: %s

As Tara, give encouraging feedback in this format:
Line 1: Positive statement about completing the test
Line 2: Empty line
Line 3-4: 2 bullet points about what this reveals
Line 5: Empty line
Line 6: Encouraging statement about their progress

Keep it under 60 words total. Be warm and supportive.`

	routinePromptTemplate = `Create personalized routine for user with these issues:
Problem areas: %s
Original concerns: %s

As Tara, respond in this format:
Line 1: Encouraging statement about their personalized routine
Line 2: Empty line
Line 3-5: 3 bullet points about what the routine targets
Line 6: Empty line
Line 7: Motivational closing statement

Keep under 80 words total. Be warm and caring.`
)

// Canned conversation texts. These carry the flow whenever no LLM provider
// is configured or a generation call fails.
const (
	greetingMessage = "Hello beautiful soul! I'm Tara, your physiotherapist for the day.\n\n" +
		"• Tell me where it hurts\n" +
		"• I'm here to help you feel better\n\n" +
		"What area is giving you trouble today?"

	duplicateGreetingMessage = "I'm still here to help! What area is bothering you?"

	clarificationMessage = "I want to understand exactly where you're hurting.\n\n" +
		"• Could you tell me the specific area?\n" +
		"• Main areas: neck, shoulders, lower back, knees, ankles, or jaw\n\n" +
		"What's bothering you most?"

	testMessageSuffix = "\n\nBased on what you've shared, let's do some movement tests:\n\n" +
		"• These will help me understand what's happening\n" +
		"• Ready to start your assessment?"

	routineFallbackMessage = "Your personalized routine is ready!\n\n" +
		"• Gentle exercises chosen for your needs\n" +
		"• They target what we found together\n" +
		"• Just a few minutes each day\n\n" +
		"Consistency beats intensity, beautiful soul!"

	routineSharedMessage = "Your routine is on its way!\n\n" +
		"• Check your messages in a moment\n" +
		"• Keep it somewhere you'll see it daily\n\n" +
		"You've got this, beautiful soul!"
)

// painAreaResponses are the canned empathetic replies per detected area,
// used when the LLM is unavailable.
var painAreaResponses = map[string]string{
	"neck": "I'm so sorry your neck hurts!\n\n" +
		"• Do you have shoulder tightness too?\n" +
		"• Any past neck injuries?\n" +
		"• Long hours at computer/phone?",
	"shoulder": "Oh no, shoulder pain can be so limiting!\n\n" +
		"• Any neck stiffness or headaches too?\n" +
		"• Does your arm feel weak or tingly?\n" +
		"• Past shoulder injuries?",
	"lower_back": "I'm sorry you're dealing with lower back pain.\n\n" +
		"• Any hip tightness or glute pain?\n" +
		"• Pain going down your legs?\n" +
		"• Past back or hip injuries?",
	"knee": "Knee pain can be so frustrating!\n\n" +
		"• Any hip tightness or ankle stiffness?\n" +
		"• Does your ankle feel unstable?\n" +
		"• Past knee, ankle, or hip injuries?",
	"ankle": "Sorry your ankle is bothering you!\n\n" +
		"• Any knee or hip discomfort too?\n" +
		"• Calf tightness or foot stiffness?\n" +
		"• Past ankle sprains or injuries?",
	"jaw": "TMJ can be so uncomfortable!\n\n" +
		"• Any neck tension or headaches?\n" +
		"• Do you clench/grind your teeth?\n" +
		"• Past dental work or jaw injuries?",
}

// fallbackEmpathyResponse picks the canned reply for an area, with a generic
// caring reply for areas added at runtime that have no canned text yet.
func fallbackEmpathyResponse(area string) string {
	if response, ok := painAreaResponses[area]; ok {
		return response
	}
	return "I'm so sorry you're in pain!\n\n" +
		"• When did it start?\n" +
		"• Any past injuries there?\n" +
		"• What movements make it worse?"
}
