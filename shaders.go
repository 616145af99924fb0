package spincube

// litMeshShader shades with a single directional light. The material is a
// rough dielectric, which reduces the standard model to lambert diffuse.
const litMeshShader = `
struct Uniforms {
    view_proj: mat4x4<f32>,
    model: mat4x4<f32>,
    normal_mx: mat4x4<f32>,
    base_color: vec4<f32>,
    to_light: vec4<f32>,
    light_color: vec4<f32>,
};

@group(0) @binding(0) var<uniform> u: Uniforms;

struct VertexOut {
    @builtin(position) clip: vec4<f32>,
    @location(0) normal: vec3<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(1) normal: vec3<f32>) -> VertexOut {
    var out: VertexOut;
    out.clip = u.view_proj * u.model * vec4<f32>(position, 1.0);
    out.normal = (u.normal_mx * vec4<f32>(normal, 0.0)).xyz;
    return out;
}

@fragment
fn fs_main(frag: VertexOut) -> @location(0) vec4<f32> {
    // to_light.w is 0 for unlit materials
    if (u.to_light.w == 0.0) {
        return vec4<f32>(u.base_color.rgb, 1.0);
    }
    let n = normalize(frag.normal);
    let l = normalize(u.to_light.xyz);
    let diffuse = max(dot(n, l), 0.0);
    return vec4<f32>(u.base_color.rgb * u.light_color.rgb * diffuse, 1.0);
}
`
