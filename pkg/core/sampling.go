package core

// RandomInUnitSphere generates a random point inside the unit ball by
// rejection sampling the [-1,1]³ cube
func RandomInUnitSphere(rng *RNG) Vec3 {
	for {
		p := Vec3{
			X: rng.Float64Range(-1, 1),
			Y: rng.Float64Range(-1, 1),
			Z: rng.Float64Range(-1, 1),
		}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed unit vector
func RandomUnitVector(rng *RNG) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}
