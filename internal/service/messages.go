package service

// User-facing texts for the intake conversation
const (
	msgAlreadyMember   = "✅ You are already a member of the IndieKaum Hub group!"
	msgAlreadyVerified = "✅ You are already verified. Please join using the link sent above or type /restart to start again."

	msgWelcome = `🎙️ *Welcome to IndieKaum* – where creators don’t just scroll, they build.

Before we unlock full access, we need to know *who’s in the room*.

📌 *Why?*
To keep this space authentic, trusted, and spam-free. Every profile helps us ensure you’re a real creative — not a bot, a brand, or a ghost.

🛡️ *Your data stays safe*, encrypted, and never shared. No algorithms. No ads.

📥 *Fill your quick intro here*
It takes 45 seconds. That’s faster than rendering a video 😉

Let’s keep IndieKaum real.

*Tap 'Next' to begin*`

	msgRestarted = "🎙️ Restarted! Let's go again. Tap 'Next' to begin:"

	msgAskName  = "📝 Your Full Name:"
	msgAskRole  = "🎭 Your Creative Role (e.g. Writer, Editor, Designer, etc.):"
	msgAskCity  = "🌍 Your City:"
	msgAskPhone = "📞 Phone Number (10 digits):"
	msgAskEmail = "📇 Email Address:"

	msgInvalidName  = "❗ Name must be at least 3 characters."
	msgInvalidRole  = "❗ Role must be at least 3 characters."
	msgInvalidCity  = "❗ City must be at least 2 characters."
	msgInvalidPhone = "❗ Invalid phone number."
	msgInvalidEmail = "❗ Invalid email."

	msgSaved = `You just stepped into a signal-only zone for serious creators.
🎯 Gigs. 🎬 Collabs. 🎤 Real Work.

Let’s grow this tribe, one authentic creator at a time.
Thank You! Welcome to the community!`

	msgJoin = `✅ Thanks! You're now verified.

Please follow the rules of the community:
🚫 No spam or self-promotion
✅ Be kind, respectful, and helpful

📵 *Optional:* If you wish to hide your contact number from other members, follow:
*Settings > Privacy and Security > Phone Number > Nobody*`

	msgNotStarted  = "Please type /start to begin."
	msgSaveFailed  = "❌ Could not save your data."
	msgInviteError = "❌ Error generating group invite."
	msgGeneric     = "⚠️ Something went wrong. Please try again."
)
