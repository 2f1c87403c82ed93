package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"marker-scene/internal/fog"
)

// Kind names a cached primitive mesh.
type Kind string

const (
	Sphere Kind = "sphere"
	Plane  Kind = "plane"
)

// cached holds mesh and material for a primitive kind. Created lazily on first draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Light is the directional + ambient lighting applied by the lit shader.
type Light struct {
	Ambient          [4]float32
	Color            [3]float32
	Intensity        float32
	SpecularPower    float32
	SpecularStrength float32
}

// DefaultLight is a soft grey ambient with a strong white key light and no highlight (Lambert look).
func DefaultLight() Light {
	return Light{
		Ambient:          [4]float32{0.5, 0.5, 0.5, 1},
		Color:            [3]float32{1, 1, 1},
		Intensity:        1.5,
		SpecularPower:    16,
		SpecularStrength: 0,
	}
}

// Registry maps primitive kinds to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[Kind]cached
	light    Light
	fog      fog.Fog
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light, set each frame
}

// NewRegistry returns a registry with no primitives.
func NewRegistry(light Light) *Registry {
	return &Registry{
		cache:    make(map[Kind]cached),
		light:    light,
		lightDir: [3]float32{0, 1, 1},
	}
}

// SetFog sets the distance fog applied by the lit shader. A zero Fog disables it.
func (r *Registry) SetFog(f fog.Fog) {
	r.fog = f
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing so lit primitives get correct shading.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

const (
	sphereRings  = 16
	sphereSlices = 16
)

// ensure creates the mesh and material for kind if not yet cached.
// Unit sizes: sphere radius 1, plane 1×1 in XZ; draws scale them.
func (r *Registry) ensure(kind Kind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch kind {
	case Sphere:
		mesh = rl.GenMeshSphere(1, sphereRings, sphereSlices)
	case Plane:
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return cached{}, false
	}
	mtl := rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	c := cached{mesh: mesh, mtl: mtl}
	r.cache[kind] = c
	return c, true
}

// loadLitShader returns a shader that does directional light + ambient with an optional specular term.
// Same vertex attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// Back faces (the underside of the ground plane) are lit with the flipped normal.
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  vec3 lit = min(amb + diffuse + specular, vec3(1.0));
  float fogFactor = 0.0;
  if (fogFar > fogNear) fogFactor = smoothstep(fogNear, fogFar, length(viewPos - fragPosition));
  finalColor = vec4(mix(lit, fogColor, fogFactor), tint.a);
}
`
)

// setUniforms uploads the per-frame light and view values (cgo-safe: local arrays).
func (r *Registry) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	l := r.light
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{l.Ambient[0], l.Ambient[1], l.Ambient[2], l.Ambient[3]}
	lightColor := [3]float32{l.Color[0], l.Color[1], l.Color[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{l.Intensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{l.SpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{l.SpecularStrength}, rl.ShaderUniformFloat)
	}
	fogColor := r.fog.RGB()
	if loc := rl.GetShaderLocation(shader, "fogColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, fogColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "fogNear"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.fog.Near}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "fogFar"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.fog.Far}, rl.ShaderUniformFloat)
	}
}

func (r *Registry) draw(kind Kind, position, scale [3]float32, tint color.RGBA) {
	c, ok := r.ensure(kind)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setUniforms(c.mtl.Shader)
	scaleM := rl.MatrixScale(scale[0], scale[1], scale[2])
	transM := rl.MatrixTranslate(position[0], position[1], position[2])
	rl.DrawMesh(c.mesh, c.mtl, rl.MatrixMultiply(scaleM, transM))
}

// DrawSphere draws a lit sphere. Must be called between BeginMode3D and EndMode3D, after SetView.
func (r *Registry) DrawSphere(center [3]float32, radius float32, tint color.RGBA) {
	r.draw(Sphere, center, [3]float32{radius, radius, radius}, tint)
}

// DrawPlane draws a lit, double-sided horizontal plane of size width×depth centred at center.
func (r *Registry) DrawPlane(center [3]float32, width, depth float32, tint color.RGBA) {
	rl.DisableBackfaceCulling()
	r.draw(Plane, center, [3]float32{width, 1, depth}, tint)
	rl.EnableBackfaceCulling()
}

// Unload releases every cached mesh and material. Call before closing the window.
func (r *Registry) Unload() {
	for kind, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, kind)
	}
}
