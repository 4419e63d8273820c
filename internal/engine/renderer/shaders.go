package renderer

// Every node is a point sprite. The light arrays match
// lighting.MaxPointLights. Point clouds flagged for swirl orbit the
// model's Y axis, faster toward the center, as uTime advances.
const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;
layout (location = 2) in float aSize;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform float uTime;
uniform float uSwirl;
uniform float uSize;
uniform float uOpacity;
uniform float uPixelScale;
uniform float uAmbient;

uniform int uLightCount;
uniform vec3 uLightPos[8];
uniform vec3 uLightColor[8];
uniform float uLightRange[8];

out vec4 vColor;
out float vDepth;

void main() {
	vec3 pos = aPos;
	if (uSwirl > 0.5) {
		float dist = length(pos.xz);
		float angle = atan(pos.x, pos.z) + (1.0 / max(dist, 0.001)) * uTime * 0.2;
		pos.x = sin(angle) * dist;
		pos.z = cos(angle) * dist;
	}

	vec4 world = uModel * vec4(pos, 1.0);
	vec4 view = uView * world;
	gl_Position = uProjection * view;

	float depth = max(-view.z, 0.001);
	gl_PointSize = clamp(aSize * uSize * uPixelScale / depth, 1.0, 256.0);

	vec3 glow = vec3(0.0);
	for (int i = 0; i < uLightCount; i++) {
		float d = distance(world.xyz, uLightPos[i]);
		glow += uLightColor[i] * max(1.0 - d / uLightRange[i], 0.0) * 0.25;
	}

	vColor = vec4(min(aColor.rgb * uAmbient + glow, vec3(1.0)), aColor.a * uOpacity);
	vDepth = depth;
}
`

const fragmentShader = `
#version 410 core

in vec4 vColor;
in float vDepth;

uniform float uFogDensity;
uniform vec3 uBackground;

out vec4 FragColor;

void main() {
	float d = distance(gl_PointCoord, vec2(0.5));
	if (d > 0.5) {
		discard;
	}
	float edge = 1.0 - smoothstep(0.3, 0.5, d);

	float f = uFogDensity * vDepth;
	float fog = exp(-f * f);

	FragColor = vec4(mix(uBackground, vColor.rgb, fog), vColor.a * edge);
}
`
