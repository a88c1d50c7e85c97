package bodymap

import "github.com/golang/geo/r2"

// catalog is the region table in declaration order.
// Regions present on both silhouettes are duplicated with their own ids
// (e.g. left_forearm / left_forearm_back) rather than sharing an entry.
var catalog = []Region{
	// Head (front)
	{ID: "forehead", Label: "Forehead", ParentRegion: "head", View: Front,
		Outline: "M 125,18 C 130,13 150,13 155,18 L 158,32 C 158,34 122,34 122,32 Z",
		Anchor:  r2.Point{X: 140, Y: 24}},
	{ID: "left_temple", Label: "Left Temple", ParentRegion: "head", View: Front,
		Outline: "M 115,28 C 113,22 118,18 125,18 L 122,34 C 118,34 115,33 115,28 Z",
		Anchor:  r2.Point{X: 119, Y: 27}},
	{ID: "right_temple", Label: "Right Temple", ParentRegion: "head", View: Front,
		Outline: "M 155,18 C 162,18 167,22 165,28 C 165,33 162,34 158,34 L 155,18 Z",
		Anchor:  r2.Point{X: 161, Y: 27}},
	{ID: "left_jaw", Label: "Left Jaw", ParentRegion: "head", View: Front,
		Outline: "M 115,40 C 114,36 115,33 115,28 L 122,34 L 125,55 C 120,52 116,47 115,40 Z",
		Anchor:  r2.Point{X: 119, Y: 42}},
	{ID: "right_jaw", Label: "Right Jaw", ParentRegion: "head", View: Front,
		Outline: "M 165,28 C 165,33 166,36 165,40 C 164,47 160,52 155,55 L 158,34 L 165,28 Z",
		Anchor:  r2.Point{X: 161, Y: 42}},
	{ID: "face", Label: "Face", ParentRegion: "head", View: Front,
		Outline: "M 122,34 L 158,34 L 155,55 C 150,62 140,68 140,68 C 140,68 130,62 125,55 L 122,34 Z",
		Anchor:  r2.Point{X: 140, Y: 50}},

	// Head (back)
	{ID: "crown", Label: "Crown", ParentRegion: "head", View: Back,
		Outline: "M 120,15 C 128,10 152,10 160,15 C 167,22 168,35 165,48 C 162,58 155,65 140,72 C 125,65 118,58 115,48 C 112,35 113,22 120,15 Z",
		Anchor:  r2.Point{X: 140, Y: 42}},

	// Neck
	{ID: "front_neck", Label: "Front of Neck", ParentRegion: "neck", View: Front,
		Outline: "M 130,72 L 150,72 L 150,98 L 130,98 Z",
		Anchor:  r2.Point{X: 140, Y: 85}},
	{ID: "back_neck", Label: "Back of Neck", ParentRegion: "neck", View: Back,
		Outline: "M 130,72 L 150,72 L 150,98 L 130,98 Z",
		Anchor:  r2.Point{X: 140, Y: 85}},

	// Chest (front)
	{ID: "upper_chest", Label: "Upper Chest", ParentRegion: "chest", View: Front,
		Outline: "M 110,100 L 170,100 L 170,125 L 110,125 Z",
		Anchor:  r2.Point{X: 140, Y: 112}},
	{ID: "left_chest", Label: "Left Chest", ParentRegion: "chest", View: Front,
		Outline: "M 110,125 L 140,125 L 140,155 L 108,155 Z",
		Anchor:  r2.Point{X: 124, Y: 140}},
	{ID: "right_chest", Label: "Right Chest", ParentRegion: "chest", View: Front,
		Outline: "M 140,125 L 170,125 L 172,155 L 140,155 Z",
		Anchor:  r2.Point{X: 156, Y: 140}},
	{ID: "sternum", Label: "Sternum", ParentRegion: "chest", View: Front,
		Outline: "M 135,105 L 145,105 L 145,155 L 135,155 Z",
		Anchor:  r2.Point{X: 140, Y: 130}},
	{ID: "lower_chest", Label: "Lower Chest", ParentRegion: "chest", View: Front,
		Outline: "M 108,155 L 172,155 L 170,165 L 110,165 Z",
		Anchor:  r2.Point{X: 140, Y: 160}},

	// Abdomen (front)
	{ID: "epigastric", Label: "Epigastric", ParentRegion: "abdomen", View: Front,
		Outline: "M 120,165 L 160,165 L 158,182 L 122,182 Z",
		Anchor:  r2.Point{X: 140, Y: 173}},
	{ID: "upper_abdomen_left", Label: "Upper Left Abdomen", ParentRegion: "abdomen", View: Front,
		Outline: "M 108,165 L 122,165 L 122,195 L 107,195 Z",
		Anchor:  r2.Point{X: 115, Y: 180}},
	{ID: "upper_abdomen_right", Label: "Upper Right Abdomen", ParentRegion: "abdomen", View: Front,
		Outline: "M 158,165 L 172,165 L 173,195 L 158,195 Z",
		Anchor:  r2.Point{X: 165, Y: 180}},
	{ID: "umbilical", Label: "Umbilical", ParentRegion: "abdomen", View: Front,
		Outline: "M 122,182 L 158,182 L 158,205 L 122,205 Z",
		Anchor:  r2.Point{X: 140, Y: 193}},
	{ID: "lower_abdomen_left", Label: "Lower Left Abdomen", ParentRegion: "abdomen", View: Front,
		Outline: "M 107,195 L 122,195 L 122,215 L 110,215 Z",
		Anchor:  r2.Point{X: 115, Y: 205}},
	{ID: "lower_abdomen_right", Label: "Lower Right Abdomen", ParentRegion: "abdomen", View: Front,
		Outline: "M 158,195 L 173,195 L 170,215 L 158,215 Z",
		Anchor:  r2.Point{X: 165, Y: 205}},
	{ID: "suprapubic", Label: "Suprapubic", ParentRegion: "abdomen", View: Front,
		Outline: "M 122,205 L 158,205 L 155,220 L 125,220 Z",
		Anchor:  r2.Point{X: 140, Y: 212}},

	// Shoulders (front)
	{ID: "left_shoulder_front", Label: "Left Shoulder", ParentRegion: "left_shoulder", View: Front,
		Outline: "M 85,102 L 110,100 L 110,122 L 95,125 Z",
		Anchor:  r2.Point{X: 98, Y: 112}},
	{ID: "right_shoulder_front", Label: "Right Shoulder", ParentRegion: "right_shoulder", View: Front,
		Outline: "M 170,100 L 195,102 L 185,125 L 170,122 Z",
		Anchor:  r2.Point{X: 182, Y: 112}},

	// Arms (front)
	{ID: "left_upper_arm", Label: "Left Upper Arm", ParentRegion: "left_arm", View: Front,
		Outline: "M 82,125 L 100,122 L 97,165 L 80,165 Z",
		Anchor:  r2.Point{X: 90, Y: 143}},
	{ID: "left_elbow", Label: "Left Elbow", ParentRegion: "left_arm", View: Front,
		Outline: "M 80,165 L 97,165 L 95,185 L 78,185 Z",
		Anchor:  r2.Point{X: 88, Y: 175}},
	{ID: "left_forearm", Label: "Left Forearm", ParentRegion: "left_arm", View: Front,
		Outline: "M 78,185 L 95,185 L 92,210 L 76,210 Z",
		Anchor:  r2.Point{X: 85, Y: 197}},
	{ID: "right_upper_arm", Label: "Right Upper Arm", ParentRegion: "right_arm", View: Front,
		Outline: "M 180,122 L 198,125 L 200,165 L 183,165 Z",
		Anchor:  r2.Point{X: 190, Y: 143}},
	{ID: "right_elbow", Label: "Right Elbow", ParentRegion: "right_arm", View: Front,
		Outline: "M 183,165 L 200,165 L 202,185 L 185,185 Z",
		Anchor:  r2.Point{X: 192, Y: 175}},
	{ID: "right_forearm", Label: "Right Forearm", ParentRegion: "right_arm", View: Front,
		Outline: "M 185,185 L 202,185 L 204,210 L 188,210 Z",
		Anchor:  r2.Point{X: 195, Y: 197}},

	// Hands (front)
	{ID: "left_wrist", Label: "Left Wrist", ParentRegion: "left_hand", View: Front,
		Outline: "M 74,210 L 92,210 L 90,222 L 72,222 Z",
		Anchor:  r2.Point{X: 82, Y: 216}},
	{ID: "left_palm", Label: "Left Palm", ParentRegion: "left_hand", View: Front,
		Outline: "M 72,222 L 90,222 L 88,240 L 65,240 Z",
		Anchor:  r2.Point{X: 78, Y: 231}},
	{ID: "right_wrist", Label: "Right Wrist", ParentRegion: "right_hand", View: Front,
		Outline: "M 188,210 L 206,210 L 208,222 L 190,222 Z",
		Anchor:  r2.Point{X: 198, Y: 216}},
	{ID: "right_palm", Label: "Right Palm", ParentRegion: "right_hand", View: Front,
		Outline: "M 190,222 L 208,222 L 215,240 L 192,240 Z",
		Anchor:  r2.Point{X: 202, Y: 231}},

	// Hands (back)
	{ID: "left_back_of_hand", Label: "Left Back of Hand", ParentRegion: "left_hand", View: Back,
		Outline: "M 72,222 L 90,222 L 88,240 L 65,240 Z",
		Anchor:  r2.Point{X: 78, Y: 231}},
	{ID: "right_back_of_hand", Label: "Right Back of Hand", ParentRegion: "right_hand", View: Back,
		Outline: "M 190,222 L 208,222 L 215,240 L 192,240 Z",
		Anchor:  r2.Point{X: 202, Y: 231}},

	// Hips (front)
	{ID: "left_hip_joint", Label: "Left Hip Joint", ParentRegion: "left_hip", View: Front,
		Outline: "M 108,218 L 125,218 L 122,240 L 108,240 Z",
		Anchor:  r2.Point{X: 116, Y: 229}},
	{ID: "left_groin", Label: "Left Groin", ParentRegion: "left_hip", View: Front,
		Outline: "M 125,218 L 140,218 L 138,240 L 122,240 Z",
		Anchor:  r2.Point{X: 131, Y: 229}},
	{ID: "right_hip_joint", Label: "Right Hip Joint", ParentRegion: "right_hip", View: Front,
		Outline: "M 155,218 L 172,218 L 172,240 L 158,240 Z",
		Anchor:  r2.Point{X: 164, Y: 229}},
	{ID: "right_groin", Label: "Right Groin", ParentRegion: "right_hip", View: Front,
		Outline: "M 140,218 L 155,218 L 158,240 L 138,240 Z",
		Anchor:  r2.Point{X: 149, Y: 229}},

	// Legs (front)
	{ID: "left_thigh", Label: "Left Thigh", ParentRegion: "left_leg", View: Front,
		Outline: "M 108,240 L 138,240 L 134,300 L 112,300 Z",
		Anchor:  r2.Point{X: 123, Y: 270}},
	{ID: "left_knee", Label: "Left Knee", ParentRegion: "left_leg", View: Front,
		Outline: "M 112,300 L 134,300 L 132,325 L 114,325 Z",
		Anchor:  r2.Point{X: 123, Y: 312}},
	{ID: "left_shin", Label: "Left Shin", ParentRegion: "left_leg", View: Front,
		Outline: "M 114,325 L 132,325 L 130,362 L 110,362 Z",
		Anchor:  r2.Point{X: 122, Y: 343}},
	{ID: "right_thigh", Label: "Right Thigh", ParentRegion: "right_leg", View: Front,
		Outline: "M 142,240 L 172,240 L 168,300 L 146,300 Z",
		Anchor:  r2.Point{X: 157, Y: 270}},
	{ID: "right_knee", Label: "Right Knee", ParentRegion: "right_leg", View: Front,
		Outline: "M 146,300 L 168,300 L 166,325 L 148,325 Z",
		Anchor:  r2.Point{X: 157, Y: 312}},
	{ID: "right_shin", Label: "Right Shin", ParentRegion: "right_leg", View: Front,
		Outline: "M 148,325 L 166,325 L 170,362 L 150,362 Z",
		Anchor:  r2.Point{X: 158, Y: 343}},

	// Feet (front)
	{ID: "left_ankle", Label: "Left Ankle", ParentRegion: "left_foot", View: Front,
		Outline: "M 110,362 L 130,362 L 130,375 L 108,375 Z",
		Anchor:  r2.Point{X: 120, Y: 368}},
	{ID: "left_top_of_foot", Label: "Left Top of Foot", ParentRegion: "left_foot", View: Front,
		Outline: "M 108,375 L 130,375 L 132,390 L 100,390 Z",
		Anchor:  r2.Point{X: 116, Y: 382}},
	{ID: "right_ankle", Label: "Right Ankle", ParentRegion: "right_foot", View: Front,
		Outline: "M 150,362 L 170,362 L 172,375 L 150,375 Z",
		Anchor:  r2.Point{X: 160, Y: 368}},
	{ID: "right_top_of_foot", Label: "Right Top of Foot", ParentRegion: "right_foot", View: Front,
		Outline: "M 150,375 L 172,375 L 180,390 L 148,390 Z",
		Anchor:  r2.Point{X: 164, Y: 382}},

	// Upper Back
	{ID: "left_upper_back", Label: "Left Upper Back", ParentRegion: "upper_back", View: Back,
		Outline: "M 110,100 L 138,100 L 138,145 L 108,145 Z",
		Anchor:  r2.Point{X: 124, Y: 122}},
	{ID: "right_upper_back", Label: "Right Upper Back", ParentRegion: "upper_back", View: Back,
		Outline: "M 142,100 L 170,100 L 172,145 L 142,145 Z",
		Anchor:  r2.Point{X: 156, Y: 122}},
	{ID: "spine_thoracic", Label: "Thoracic Spine", ParentRegion: "upper_back", View: Back,
		Outline: "M 136,100 L 144,100 L 144,165 L 136,165 Z",
		Anchor:  r2.Point{X: 140, Y: 132}},

	// Lower Back
	{ID: "left_lower_back", Label: "Left Lower Back", ParentRegion: "lower_back", View: Back,
		Outline: "M 108,165 L 138,165 L 138,205 L 107,205 Z",
		Anchor:  r2.Point{X: 122, Y: 185}},
	{ID: "right_lower_back", Label: "Right Lower Back", ParentRegion: "lower_back", View: Back,
		Outline: "M 142,165 L 172,165 L 173,205 L 142,205 Z",
		Anchor:  r2.Point{X: 158, Y: 185}},
	{ID: "spine_lumbar", Label: "Lumbar Spine", ParentRegion: "lower_back", View: Back,
		Outline: "M 136,165 L 144,165 L 144,205 L 136,205 Z",
		Anchor:  r2.Point{X: 140, Y: 185}},
	{ID: "sacrum", Label: "Sacrum", ParentRegion: "lower_back", View: Back,
		Outline: "M 130,205 L 150,205 L 148,222 L 132,222 Z",
		Anchor:  r2.Point{X: 140, Y: 213}},

	// Buttocks (back)
	{ID: "left_buttock", Label: "Left Buttock", ParentRegion: "left_hip", View: Back,
		Outline: "M 108,218 L 138,218 L 138,248 L 108,248 Z",
		Anchor:  r2.Point{X: 123, Y: 233}},
	{ID: "right_buttock", Label: "Right Buttock", ParentRegion: "right_hip", View: Back,
		Outline: "M 142,218 L 172,218 L 172,248 L 142,248 Z",
		Anchor:  r2.Point{X: 157, Y: 233}},

	// Calves (back)
	{ID: "left_calf", Label: "Left Calf", ParentRegion: "left_leg", View: Back,
		Outline: "M 112,300 L 134,300 L 130,362 L 110,362 Z",
		Anchor:  r2.Point{X: 122, Y: 330}},
	{ID: "right_calf", Label: "Right Calf", ParentRegion: "right_leg", View: Back,
		Outline: "M 146,300 L 168,300 L 170,362 L 150,362 Z",
		Anchor:  r2.Point{X: 158, Y: 330}},

	// Heels / Soles (back)
	{ID: "left_heel", Label: "Left Heel", ParentRegion: "left_foot", View: Back,
		Outline: "M 110,362 L 130,362 L 130,378 L 108,378 Z",
		Anchor:  r2.Point{X: 120, Y: 370}},
	{ID: "left_sole", Label: "Left Sole", ParentRegion: "left_foot", View: Back,
		Outline: "M 108,378 L 130,378 L 132,390 L 100,390 Z",
		Anchor:  r2.Point{X: 116, Y: 384}},
	{ID: "right_heel", Label: "Right Heel", ParentRegion: "right_foot", View: Back,
		Outline: "M 150,362 L 170,362 L 172,378 L 150,378 Z",
		Anchor:  r2.Point{X: 160, Y: 370}},
	{ID: "right_sole", Label: "Right Sole", ParentRegion: "right_foot", View: Back,
		Outline: "M 150,378 L 172,378 L 180,390 L 148,390 Z",
		Anchor:  r2.Point{X: 164, Y: 384}},

	// Back-view legs (thigh/knee reuse same position)
	{ID: "left_thigh_back", Label: "Left Thigh (Back)", ParentRegion: "left_leg", View: Back,
		Outline: "M 108,248 L 138,248 L 134,300 L 112,300 Z",
		Anchor:  r2.Point{X: 123, Y: 274}},
	{ID: "left_knee_back", Label: "Left Knee (Back)", ParentRegion: "left_leg", View: Back,
		Outline: "M 112,300 L 134,300 L 132,325 L 114,325 Z",
		Anchor:  r2.Point{X: 123, Y: 312}},
	{ID: "right_thigh_back", Label: "Right Thigh (Back)", ParentRegion: "right_leg", View: Back,
		Outline: "M 142,248 L 172,248 L 168,300 L 146,300 Z",
		Anchor:  r2.Point{X: 157, Y: 274}},
	{ID: "right_knee_back", Label: "Right Knee (Back)", ParentRegion: "right_leg", View: Back,
		Outline: "M 146,300 L 168,300 L 166,325 L 148,325 Z",
		Anchor:  r2.Point{X: 157, Y: 312}},

	// Back-view arms (mirror front)
	{ID: "left_shoulder_back", Label: "Left Shoulder (Back)", ParentRegion: "left_shoulder", View: Back,
		Outline: "M 85,102 L 110,100 L 110,122 L 95,125 Z",
		Anchor:  r2.Point{X: 98, Y: 112}},
	{ID: "right_shoulder_back", Label: "Right Shoulder (Back)", ParentRegion: "right_shoulder", View: Back,
		Outline: "M 170,100 L 195,102 L 185,125 L 170,122 Z",
		Anchor:  r2.Point{X: 182, Y: 112}},
	{ID: "left_upper_arm_back", Label: "Left Upper Arm (Back)", ParentRegion: "left_arm", View: Back,
		Outline: "M 82,125 L 100,122 L 97,165 L 80,165 Z",
		Anchor:  r2.Point{X: 90, Y: 143}},
	{ID: "left_elbow_back", Label: "Left Elbow (Back)", ParentRegion: "left_arm", View: Back,
		Outline: "M 80,165 L 97,165 L 95,185 L 78,185 Z",
		Anchor:  r2.Point{X: 88, Y: 175}},
	{ID: "left_forearm_back", Label: "Left Forearm (Back)", ParentRegion: "left_arm", View: Back,
		Outline: "M 78,185 L 95,185 L 92,210 L 76,210 Z",
		Anchor:  r2.Point{X: 85, Y: 197}},
	{ID: "right_upper_arm_back", Label: "Right Upper Arm (Back)", ParentRegion: "right_arm", View: Back,
		Outline: "M 180,122 L 198,125 L 200,165 L 183,165 Z",
		Anchor:  r2.Point{X: 190, Y: 143}},
	{ID: "right_elbow_back", Label: "Right Elbow (Back)", ParentRegion: "right_arm", View: Back,
		Outline: "M 183,165 L 200,165 L 202,185 L 185,185 Z",
		Anchor:  r2.Point{X: 192, Y: 175}},
	{ID: "right_forearm_back", Label: "Right Forearm (Back)", ParentRegion: "right_arm", View: Back,
		Outline: "M 185,185 L 202,185 L 204,210 L 188,210 Z",
		Anchor:  r2.Point{X: 195, Y: 197}},
	{ID: "left_wrist_back", Label: "Left Wrist (Back)", ParentRegion: "left_hand", View: Back,
		Outline: "M 74,210 L 92,210 L 90,222 L 72,222 Z",
		Anchor:  r2.Point{X: 82, Y: 216}},
	{ID: "right_wrist_back", Label: "Right Wrist (Back)", ParentRegion: "right_hand", View: Back,
		Outline: "M 188,210 L 206,210 L 208,222 L 190,222 Z",
		Anchor:  r2.Point{X: 198, Y: 216}},
}
