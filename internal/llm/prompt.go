package llm

import "context"

// DefaultModel is used when no model preference is configured.
const DefaultModel = "gpt-4o-mini"

// scenePrompt asks for the scene description schema the pipeline consumes.
// The pipeline sanitizes everything, so the prompt aims for quality, not
// safety: a model that ignores the ranges still produces a renderable scene.
const scenePrompt = "You are a 3D scene designer. The user describes a scene in natural language; " +
	"you reply with exactly one JSON object and nothing else. No markdown, no explanation.\n\n" +
	"Schema:\n" +
	"{\"background\": \"#RRGGBB\", \"objects\": [ ... ]}\n\n" +
	"Each object:\n" +
	"- type: one of cube, sphere, hemisphere, cylinder, cone, torus, plane, disc, knot, human\n" +
	"- name: short unique label\n" +
	"- role: body | clothing | accessory | environment | prop | decoration\n" +
	"- attachTo: scene | head | torso | legs | arms (non-scene only for parts of a body)\n" +
	"- params: numbers for x, y, z, scale (0.1-10), color (hex like \"0xFF8800\"), and the\n" +
	"  dimensions the type needs: radius, width, height, depth, tube, innerRadius, outerRadius, sides\n" +
	"- scaleMultiplier: for attached parts, relative to the body (default 1)\n" +
	"- offset: [x, y, z] nudge for attached parts\n" +
	"- animation (optional): {\"spinY\": rad/s, \"orbitRadius\": n, \"orbitSpeed\": rad/s, " +
	"\"orbitAxis\": \"y\", \"pulseAmplitude\": 0-0.9, \"pulseSpeed\": rad/s}\n\n" +
	"Rules:\n" +
	"- Exactly one object with role \"body\" per creature; give it type \"human\" for people.\n" +
	"- Attach clothing/accessories to the body via attachTo, never with absolute coordinates.\n" +
	"- Ground the scene with a large plane; keep objects within about 40 units of the origin.\n" +
	"- 5 to 25 objects. Reply with only the JSON object."

// GenerateScene asks the client to produce a raw scene description for the
// user's request. The reply is returned verbatim (it may still be wrapped in
// markdown; callers run it through describe.ExtractJSON and describe.Decode).
func GenerateScene(ctx context.Context, c Client, model, userRequest string) (string, error) {
	if model == "" {
		model = DefaultModel
	}
	return c.Complete(ctx, model, scenePrompt, userRequest)
}
