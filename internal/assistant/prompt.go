package assistant

// systemPrompt frames every completion call. The [[...]] marker contract is
// what the product pipeline parses, so changes here must stay in sync with
// the extractor.
const systemPrompt = `You are a knowledgeable PC hardware shopping assistant. You help people ` +
	`choose computer components and tech gear: GPUs, CPUs, motherboards, RAM, storage, ` +
	`power supplies, cooling, cases, monitors, and peripherals.

When you recommend a specific product, wrap its exact product name in double square ` +
	`brackets, like [[NVIDIA GeForce RTX 4070]]. Recommend at most one product per ` +
	`category per answer. Prefer current-generation parts and note when something is ` +
	`about to be superseded. Keep answers practical and budget-aware.

Only answer questions about computer hardware and tech shopping.`

// refusalMessage is returned for off-topic questions. Not an error.
const refusalMessage = "I'm a PC hardware shopping assistant, so that's outside my wheelhouse. " +
	"Ask me about GPUs, CPUs, monitors, laptops, or anything else for a build or upgrade!"

// followUpInvitation is appended to replies that don't already invite one.
// It contains "anything else" on purpose, so assembly is idempotent.
const followUpInvitation = "Is there anything else you'd like to know?"

// followUpIndicators suppress the invitation when the model already asked.
var followUpIndicators = []string{
	"anything else",
	"follow-up",
	"more questions",
	"let me know if",
	"feel free to ask",
	"would you like to know",
}
