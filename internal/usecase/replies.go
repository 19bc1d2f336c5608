package usecase

// Тексты ответов пользователю. Ошибки ввода всегда гасятся локально
// с подсказкой, а не пробрасываются как фолты
const (
	replyGreetingConnected = "📮 Hello %s,\nYou are now successfully connected to our Terabis platform.\n\nSend a Terabox link for converting."

	replyGreetingNew = "📮 Hello %s,\n\n🌟 I am a bot to convert your Terabox links directly into your Bisgram.com account.\n\nConnect your account with /connect and your API key.\n\n💠 You can find your API key on https://bisgram.com/member/tools/api\n\nℹ Send me /help to get the guide."

	replyConnectUsage = "Please provide your API key. Example: /connect YOUR_API_KEY"

	replyConnected = "✅ API key connected successfully! Send a Terabox link for converting."

	replyInvalidKey = "❌ Invalid API key. Please try again.\n\nHow to connect: /help"

	replyDisconnected = "✅ Your API key has been disconnected successfully."

	replyNotConnected = "⚠️ You have not connected an API key yet."

	replyViewKey = "✅ Your connected API key: `%s`"

	replyViewNoKey = "⚠️ No API key is connected. Use /connect to link one."

	replyPleaseConnect = "⚠️ Please connect your API key first. Use /connect YOUR_API_KEY.\n\nSend /help for the guide."

	replyGenericError = "❌ An error occurred. Please try again later."

	replyBroadcastUsage = "Please provide a message to broadcast. Example: /broadcast Hello everyone!"

	replyNotAuthorized = "⛔ You are not authorized to use this command."

	replyBroadcastDone = "📢 Broadcasted to %d users (%d failed)."

	replyHelp = "How to Connect:\n1. Go to Bisgram.com\n2. Create an Account\n3. Click on the menu bar (top left side)\n4. Click on *Tools > Developer API*\n5. Copy the API token\n6. Use this command: /connect YOUR_API_KEY\n   Example: /connect 8268d7f25na2c690bk25d4k20fbc63p5p09d6906"

	replyCommands = "🤖 *Link Shortener Bot Commands:*\n- /connect [API_KEY] - Connect your API key.\n- /disconnect - Disconnect your API key.\n- /view - View your connected API key.\n- /help - How to connect to website."
)
