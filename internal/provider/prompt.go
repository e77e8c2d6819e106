package provider

// FallbackReply is the sentence the model must use when nothing fits
const FallbackReply = "Sorry, nothing in the current product list matches your criteria very well."

// BuildPrompt embeds the product listing and the user's request into the
// recommendation instructions. Identical inputs always give identical output.
func BuildPrompt(listing, preference string) string {
	return "You are an expert product recommendation assistant.\n" +
		"Only recommend products that are in the list below.\n" +
		"Do NOT recommend anything that is not in this exact list.\n\n" +
		"Available products:\n" + listing + "\n\n" +
		"User request: " + preference + "\n\n" +
		"Return the top 3-5 best matches (or fewer if not many match).\n" +
		"For each recommendation write:\n" +
		"- Product name\n" +
		"- Price\n" +
		"- Why it matches the user's request (2-3 short sentences max)\n\n" +
		"If no product matches well, say \"" + FallbackReply + "\"\n\n" +
		"Be friendly, concise, and helpful.\n"
}
