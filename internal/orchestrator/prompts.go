package orchestrator

import "fmt"

// Prompt templates. Each handler owns exactly one template; the framing text
// is part of the output contract and changing it changes what the service
// returns.

const trendPrompt = `You are an expert TikTok trend analyst. Find the top 3 trending hashtags and sounds for affiliate marketing. Provide fictional but realistic data for engagement, post counts, growth percentage, and competition difficulty (Easy, Med, or Hard). IDs should be short and unique e.g. trend-1`

func campaignPrompt(niche string) string {
	return fmt.Sprintf(`You are a viral marketing expert. Generate a viral TikTok video campaign idea for the %q niche. Provide a catchy title, a strong hook, a 3-point script outline, and a clear call to action.`, niche)
}

func complexQueryPrompt(query string) string {
	return fmt.Sprintf(`You are a world-class marketing and business strategist. Provide a comprehensive, in-depth response to the following query: %q`, query)
}

func genericPrompt(command string) string {
	return fmt.Sprintf(`You are a helpful assistant for a TikTok marketing platform called TrendFlow AI. Keep your responses concise and helpful. Respond to the following user query: %q`, command)
}

func optimizeCaptionPrompt(caption string) string {
	return fmt.Sprintf(`You are a viral marketing expert specializing in TikTok captions. Optimize the following text to be more engaging and increase click-through rate. Return only the optimized text, nothing else, no quotes: %q`, caption)
}
